package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/urlguard/go-urlguard/pkg/engine"
	"github.com/urlguard/go-urlguard/pkg/geoip"
	"github.com/urlguard/go-urlguard/pkg/models"
	"github.com/urlguard/go-urlguard/pkg/storage"
)

// CheckRequest is the JSON body for a single URL check.
type CheckRequest struct {
	URL string `json:"url" binding:"required"`
}

var (
	classifier *engine.Classifier
	batchStore storage.BatchStore
	appConfig  Config
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Println(err)
		return
	}
	appConfig = cfg
	InitLogger(cfg.Logging)

	// GeoIP enrichment is optional; without databases the engine runs
	// pure in-memory.
	var geoService *geoip.Service
	if cfg.GeoIP.CityDB != "" && cfg.GeoIP.ASNDB != "" {
		geoService, err = geoip.NewService(cfg.GeoIP.CityDB, cfg.GeoIP.ASNDB)
		if err != nil {
			slog.Error("geoip disabled", "error", err)
			geoService = nil
		} else {
			defer geoService.Close()
			slog.Info("geoip enrichment enabled")
		}
	}

	batchStore = storage.NewMemoryStore()
	classifier = engine.New(geoService)

	r := gin.Default()
	r.POST("/api/v1/check", handleCheck)
	r.POST("/api/v1/batch", handleBatch)
	r.GET("/api/v1/batch/:id/download", handleDownload)

	slog.Info("listening", "addr", cfg.Server.Listen)
	if err := r.Run(cfg.Server.Listen); err != nil {
		slog.Error("server stopped", "error", err)
	}
}

func handleCheck(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict, err := classifySafe(req.URL)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"url": req.URL, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, verdict)
}

// handleBatch classifies the first column of an uploaded CSV. The first
// row is treated as a header. A malformed file yields a single error row
// instead of a failed request; a bad row never aborts the batch.
func handleBatch(c *gin.Context) {
	rows, readErr := readUploadedCSV(c)

	result := &storage.BatchResult{
		ID:        uuid.NewString(),
		Header:    models.ReportColumns,
		CreatedAt: time.Now(),
	}

	if readErr != nil {
		result.Rows = [][]string{{"ERROR reading file", "", "", "", "", readErr.Error()}}
	} else {
		result.Rows = classifyRows(rows)
	}

	if err := batchStore.SaveBatch(result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"batch_id": result.ID,
		"header":   result.Header,
		"rows":     result.Rows,
		"download": fmt.Sprintf("/api/v1/batch/%s/download", result.ID),
	})
}

func handleDownload(c *gin.Context) {
	result, err := batchStore.GetBatch(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown batch id"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="results.csv"`)

	w := csv.NewWriter(c.Writer)
	w.Write(result.Header)
	w.WriteAll(result.Rows)
	w.Flush()
}

func readUploadedCSV(c *gin.Context) ([][]string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("missing file upload: %w", err)
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	return rows, nil
}

func classifyRows(rows [][]string) [][]string {
	// First row is the header, as in any tabular export.
	rows = rows[1:]
	if appConfig.Batch.MaxRows > 0 && len(rows) > appConfig.Batch.MaxRows {
		rows = rows[:appConfig.Batch.MaxRows]
	}

	urls := make([]string, len(rows))
	for i, row := range rows {
		if len(row) > 0 {
			urls[i] = row[0]
		}
	}

	verdicts, err := classifyBatchSafe(urls)

	out := make([][]string, 0, len(rows))
	for i := range rows {
		switch {
		case urls[i] == "":
			out = append(out, []string{"", "ERROR", "missing URL column", "", "", ""})
		case err != nil:
			out = append(out, []string{urls[i], "ERROR", err.Error(), "", "", ""})
		default:
			out = append(out, verdicts[i].ReportRow())
		}
	}
	return out
}

// classifySafe shields callers from any unexpected panic inside the
// engine so one bad input surfaces as an inline error result instead of
// taking down the whole request or batch.
func classifySafe(url string) (verdict models.Verdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("classifier panic", "url", url, "panic", r)
			err = fmt.Errorf("internal failure: %v", r)
		}
	}()
	return classifier.Classify(url), nil
}

// classifyBatchSafe is the batch counterpart of classifySafe.
func classifyBatchSafe(urls []string) (verdicts []models.Verdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("classifier panic", "panic", r)
			err = fmt.Errorf("internal failure: %v", r)
		}
	}()
	return classifier.ClassifyBatch(urls, appConfig.Batch.Workers), nil
}
