package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/charta/internal/core/domain"
	"github.com/custodia-labs/charta/internal/core/ports/driving"
)

// GenerateResponse is the JSON body of a successful generation.
type GenerateResponse struct {
	FileName    string            `json:"file_name"`
	MIMEType    string            `json:"mime_type"`
	Content     []byte            `json:"content"`
	Document    *domain.Document  `json:"document"`
	Terms       map[string]string `json:"terms"`
	Advisories  []string          `json:"advisories"`
	Suggestions []string          `json:"suggestions,omitempty"`
	Saved       bool              `json:"saved"`
}

// ValidationResponse is the JSON body of a 422 response.
type ValidationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
	Terms  map[string]string `json:"terms,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": s.ports.Catalog.ListTemplateNames()})
}

func (s *Server) getTemplate(c *gin.Context) {
	name := c.Param("name")
	tpl := s.ports.Charter.Preview(name, c.Query("vessel_class"))
	if tpl.IsEmpty() {
		writeError(c, fmt.Errorf("template %q: %w", name, domain.ErrNotFound))
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (s *Server) suggestTemplates(c *gin.Context) {
	route := c.Query("route")
	var names []string
	if s.ports.Advisor != nil {
		names = s.ports.Advisor.Suggest(route)
	} else {
		names = s.ports.Catalog.ListTemplateNames()
	}
	c.JSON(http.StatusOK, gin.H{"route": route, "templates": names})
}

func (s *Server) listVesselClasses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vessel_classes": domain.VesselClasses()})
}

func (s *Server) listClauses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clauses": domain.ClauseLibrary()})
}

func (s *Server) listPorts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ports": domain.KnownPorts, "unselected": domain.PortUnselected})
}

// generateCharter runs the pipeline. With ?download=true the document
// bytes are returned as an attachment instead of JSON.
func (s *Server) generateCharter(c *gin.Context) {
	var req driving.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.ports.Charter.Generate(c.Request.Context(), req)
	if err != nil {
		if result != nil && len(result.Errors) > 0 {
			c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
				Error:  domain.ErrValidation.Error(),
				Fields: result.Errors,
				Terms:  termStrings(result.Terms),
			})
			return
		}
		writeError(c, err)
		return
	}

	if download, _ := strconv.ParseBool(c.Query("download")); download {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
		c.Data(http.StatusOK, result.MIMEType, result.Content)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		FileName:    result.FileName,
		MIMEType:    result.MIMEType,
		Content:     result.Content,
		Document:    result.Document,
		Terms:       termStrings(result.Terms),
		Advisories:  nonNil(result.Advisories),
		Suggestions: result.Suggestions,
		Saved:       result.Saved,
	})
}

func (s *Server) listRecords(c *gin.Context) {
	recs, err := s.ports.Charter.Records(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if recs == nil {
		recs = []domain.CharterRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"records": recs, "count": len(recs)})
}

func (s *Server) saveRecord(c *gin.Context) {
	var rec domain.CharterRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if rec.Template == "" {
		writeError(c, fmt.Errorf("%w: template is required", domain.ErrInvalidInput))
		return
	}
	if err := s.ports.Charter.Save(c.Request.Context(), rec); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"saved": true})
}

func (s *Server) estimateRate(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Query("distance_nm"), 64)
	if err != nil {
		writeError(c, fmt.Errorf("%w: distance_nm must be a number", domain.ErrInvalidInput))
		return
	}

	est, err := s.ports.Charter.EstimateRate(c.Request.Context(), domain.RateQuery{
		DistanceNM:  distance,
		VesselClass: domain.VesselClass(c.Query("vessel_class")),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func termStrings(terms *domain.TermSet) map[string]string {
	if terms == nil {
		return nil
	}
	return terms.Strings()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
