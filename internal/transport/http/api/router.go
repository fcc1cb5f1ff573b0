package apihttp

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"chartwhisperer/internal/analysis"
	"chartwhisperer/internal/journal"
	"chartwhisperer/internal/types"
)

// Fixed client-facing messages. Raw upstream detail never leaves the
// server log.
const (
	msgInvalidUpload       = "file must be an image"
	msgUpstreamFailure     = "analysis provider request failed"
	msgPersistenceFailure  = "journal persistence failed"
	msgJournaledAndAlerted = "Journaled and Alerted!"
)

const defaultListLimit = 50

// Router holds the request handlers.
type Router struct {
	analysis *analysis.Service
	journal  *journal.Service
	logger   *zerolog.Logger
}

// NewRouter constructs the API router.
func NewRouter(analysisSvc *analysis.Service, journalSvc *journal.Service, logger *zerolog.Logger) *Router {
	return &Router{analysis: analysisSvc, journal: journalSvc, logger: logger}
}

// Register mounts the API routes on the engine.
func (r *Router) Register(engine *gin.Engine) {
	engine.POST("/analyze", r.handleAnalyze)
	engine.POST("/save", r.handleSave)
	engine.GET("/journal", r.handleJournalList)
}

func (r *Router) handleAnalyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidUpload})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidUpload})
		return
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidUpload})
		return
	}

	result, err := r.analysis.Analyze(c.Request.Context(), types.AnalysisRequest{
		Image:       image,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Strategy:    c.PostForm("strategy"),
	})
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis":    result.Text,
		"analysis_id": result.ID,
	})
}

// saveRequest is the /save wire shape. Price fields are pointers so a
// missing field is distinguishable from zero; decimals accept the
// reference shape's integer payloads as well as fractional prices.
type saveRequest struct {
	Pair         string           `json:"pair" binding:"required"`
	Bias         string           `json:"bias" binding:"required"`
	Entry        *decimal.Decimal `json:"entry" binding:"required"`
	StopLoss     *decimal.Decimal `json:"stop_loss" binding:"required"`
	TakeProfit   *decimal.Decimal `json:"take_profit" binding:"required"`
	AnalysisText string           `json:"analysis_text"`
	AnalysisID   string           `json:"analysis_id"`
}

func (r *Router) handleSave(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := types.JournalEntry{
		AnalysisID:   req.AnalysisID,
		Pair:         req.Pair,
		Bias:         req.Bias,
		Entry:        *req.Entry,
		StopLoss:     *req.StopLoss,
		TakeProfit:   *req.TakeProfit,
		AnalysisText: req.AnalysisText,
	}
	if err := r.journal.Save(c.Request.Context(), &entry); err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": msgJournaledAndAlerted,
	})
}

func (r *Router) handleJournalList(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	entries, err := r.journal.List(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, journal.ErrStoreDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": journal.ErrStoreDisabled.Error()})
			return
		}
		r.logger.Error().Err(err).Msg("journal list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgPersistenceFailure})
		return
	}
	if entries == nil {
		entries = []types.JournalEntry{}
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// respondError maps classified service errors to fixed client messages.
func (r *Router) respondError(c *gin.Context, err error) {
	switch types.KindOf(err) {
	case types.KindInvalidInput:
		var e *types.Error
		msg := msgInvalidUpload
		if errors.As(err, &e) && e.Msg != "" {
			msg = e.Msg
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	case types.KindUpstreamFailure:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgUpstreamFailure})
	case types.KindPersistenceFailure:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgPersistenceFailure})
	default:
		r.logger.Error().Err(err).Msg("unclassified handler error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
