package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openkb/rag-be/repository"
	"github.com/openkb/rag-be/service"
	"github.com/openkb/rag-be/types"
)

type RAGHandler struct {
	ingestService service.Ingester
	answerService service.Answerer
	evalService   service.Evaluator
	sources       repository.SourceRepo
}

func NewRAGHandler(
	ingestService service.Ingester,
	answerService service.Answerer,
	evalService service.Evaluator,
	sources repository.SourceRepo,
) *RAGHandler {
	return &RAGHandler{
		ingestService: ingestService,
		answerService: answerService,
		evalService:   evalService,
		sources:       sources,
	}
}

// HandleIngest runs the ingestion pipeline for one document. The pipeline
// reports failures as a tagged result, which maps to a 500 here.
func (h *RAGHandler) HandleIngest(c *gin.Context) {
	var req types.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  types.StatusError,
			Message: "Invalid request body",
		})
		return
	}
	if req.URL == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  types.StatusError,
			Message: "url and name are required",
		})
		return
	}

	result := h.ingestService.Ingest(c.Request.Context(), req.URL, req.Name)
	if result.Status == types.StatusError {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleQuery answers a query over the knowledge base. Pipeline errors
// surface as a generic server error; the cause stays in the logs.
func (h *RAGHandler) HandleQuery(c *gin.Context) {
	var req types.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  types.StatusError,
			Message: "Invalid request body",
		})
		return
	}

	result, err := h.answerService.Answer(c.Request.Context(), req.Query)
	if err != nil {
		log.Printf("Query failed: %v", err)
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  types.StatusError,
			Message: "Failed to answer query",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleEval never hard-fails; per-pair failures are scored as misses.
func (h *RAGHandler) HandleEval(c *gin.Context) {
	c.JSON(http.StatusOK, h.evalService.Evaluate(c.Request.Context()))
}

func (h *RAGHandler) HandleIngestedDocs(c *gin.Context) {
	names, err := h.sources.ListSources(c.Request.Context())
	if err != nil {
		log.Printf("Failed to list ingested sources: %v", err)
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  types.StatusError,
			Message: "Failed to list ingested documents",
		})
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, types.IngestedDocsResponse{
		Documents: names,
	})
}
