package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/meshfold/internal/assets"
	"github.com/Faultbox/meshfold/internal/logger"
	"github.com/Faultbox/meshfold/internal/report"
	"github.com/Faultbox/meshfold/pkg/formats"
	"github.com/Faultbox/meshfold/pkg/unfold"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// groups accepts a binary STL body (optionally gzip-compressed) and answers
// with the group report as JSON. Query parameters "events" and "min_group"
// override the configured report options for this request.
func (s *Server) groups(c *gin.Context) {
	id := uuid.New().String()

	opts, err := s.reportOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"id": id, "error": err.Error()})
		return
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes())
	stl, err := formats.ReadSTLLimit(body, s.maxUploadBytes())
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || errors.Is(err, formats.ErrSTLTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		logger.Warn("rejected STL upload", zap.String("id", id), zap.Error(err))
		c.JSON(status, gin.H{"id": id, "error": err.Error()})
		return
	}

	s.respond(c, id, stl.Name(), unfold.FromSTL(stl), opts)
}

// meshGroups answers with the group report for a mesh from mesh.dirs.
func (s *Server) meshGroups(c *gin.Context) {
	id := uuid.New().String()

	opts, err := s.reportOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"id": id, "error": err.Error()})
		return
	}

	mesh, err := s.meshes.Load(c.Param("name"))
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, assets.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, assets.ErrInvalidName):
			status = http.StatusBadRequest
		default:
			logger.Error("loading mesh", zap.String("id", id), zap.Error(err))
		}
		c.JSON(status, gin.H{"id": id, "error": err.Error()})
		return
	}

	s.respond(c, id, mesh.STL.Name(), mesh.Triangles, opts)
}

// respond walks tris with a fresh walker and writes the JSON report.
func (s *Server) respond(c *gin.Context, id, name string, tris []unfold.Triangle, opts report.Options) {
	if len(tris) > s.cfg.MaxTriangles {
		logger.Warn("mesh over triangle limit",
			zap.String("id", id),
			zap.Int("triangles", len(tris)),
			zap.Int("limit", s.cfg.MaxTriangles),
		)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"id":    id,
			"error": fmt.Sprintf("mesh has %d triangles, limit is %d", len(tris), s.cfg.MaxTriangles),
		})
		return
	}
	if err := c.Request.Context().Err(); err != nil {
		logger.Warn("request cancelled before walk", zap.String("id", id), zap.Error(err))
		return
	}

	var walk unfold.Options
	if s.opts.Trace {
		logger.Header(name)
		logger.TriangleCount(len(tris))
		walk.OnAdjacency = logger.AdjacencyTracer()
	}
	groups := unfold.FindGroups(tris, &walk)

	rep := report.Build(name, tris, groups, opts)
	rep.ID = id

	data, err := report.JSON(rep)
	if err != nil {
		logger.Error("encoding report", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"id": id, "error": "encoding report"})
		return
	}

	logger.Info("analysed mesh",
		zap.String("id", id),
		zap.Int("triangles", len(tris)),
		zap.Int("groups", len(groups)),
	)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (s *Server) reportOptions(c *gin.Context) (report.Options, error) {
	opts := report.Options{
		CountVertices: s.opts.CountVertices,
		IncludeEvents: s.opts.IncludeEvents,
		MinGroupSize:  s.opts.MinGroupReport,
	}

	if v, ok := c.GetQuery("events"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New("events: expected a boolean")
		}
		opts.IncludeEvents = b
	}
	if v, ok := c.GetQuery("min_group"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, errors.New("min_group: expected a non-negative integer")
		}
		opts.MinGroupSize = n
	}

	return opts, nil
}
