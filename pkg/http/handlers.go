package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"liyu1981.xyz/footfall-service/pkg/footfall"
	"liyu1981.xyz/footfall-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

func accountID(c *gin.Context) string {
	return c.GetString(ContextKeyAccountID)
}

func (rs *RestfulServer) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, footfall.ErrStoreNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "store not found"})
	case errors.Is(err, footfall.ErrAlertStateConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

type StoreRequest struct {
	StoreID     string `json:"storeId"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	TillCount   int    `json:"tillCount"`
	Capacity    int    `json:"capacity"`
	EntryPoints int    `json:"entryPoints"`
	OpeningHour string `json:"openingHour"`
	ClosingHour string `json:"closingHour"`
}

var storeRequestSchema = z.Struct(z.Shape{
	"StoreID":     z.String(),
	"Name":        z.String().Min(1).Required(),
	"Location":    z.String(),
	"TillCount":   z.Int().GTE(1).Required(),
	"Capacity":    z.Int().GTE(1).Required(),
	"EntryPoints": z.Int().GTE(0),
	"OpeningHour": z.String(),
	"ClosingHour": z.String(),
})

func (rs *RestfulServer) CreateStore(c *gin.Context) {
	var req StoreRequest
	if err := storeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	store, err := rs.Footfall.Store.CreateStore(accountID(c), &models.Store{
		StoreID:     req.StoreID,
		Name:        req.Name,
		Location:    req.Location,
		TillCount:   req.TillCount,
		Capacity:    req.Capacity,
		EntryPoints: req.EntryPoints,
		OpeningHour: req.OpeningHour,
		ClosingHour: req.ClosingHour,
	})
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, store)
}

func (rs *RestfulServer) ListStores(c *gin.Context) {
	stores, err := rs.Footfall.Store.ListStores(accountID(c))
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stores)
}

func (rs *RestfulServer) GetStore(c *gin.Context) {
	store, err := rs.Footfall.Store.GetStore(accountID(c), c.Param("store_id"))
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, store)
}

func (rs *RestfulServer) DeleteStore(c *gin.Context) {
	if err := rs.Footfall.Store.DeactivateStore(accountID(c), c.Param("store_id")); err != nil {
		rs.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ConfigRequest struct {
	QueueMediumLength    int     `json:"queueMediumLength"`
	QueueHighLength      int     `json:"queueHighLength"`
	QueueCriticalLength  int     `json:"queueCriticalLength"`
	OccupancyMediumRatio float64 `json:"occupancyMediumRatio"`
	OccupancyHighRatio   float64 `json:"occupancyHighRatio"`
	WaitTimeMediumBound  float64 `json:"waitTimeMediumBound"`
	TillQueueThreshold   int     `json:"tillQueueThreshold"`
}

var configRequestSchema = z.Struct(z.Shape{
	"QueueMediumLength":    z.Int().GTE(1).Required(),
	"QueueHighLength":      z.Int().GTE(1).Required(),
	"QueueCriticalLength":  z.Int().GTE(1).Required(),
	"OccupancyMediumRatio": z.Float64().GTE(0).Required(),
	"OccupancyHighRatio":   z.Float64().GTE(0).Required(),
	"WaitTimeMediumBound":  z.Float64().GTE(0).Required(),
	"TillQueueThreshold":   z.Int().GTE(1).Required(),
})

func (rs *RestfulServer) UpdateConfig(c *gin.Context) {
	storeID := c.Param("store_id")

	if _, err := rs.Footfall.Store.GetStore(accountID(c), storeID); err != nil {
		rs.renderError(c, err)
		return
	}

	var req ConfigRequest
	if err := configRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	config := models.StoreConfig{
		StoreID:              storeID,
		QueueMediumLength:    req.QueueMediumLength,
		QueueHighLength:      req.QueueHighLength,
		QueueCriticalLength:  req.QueueCriticalLength,
		OccupancyMediumRatio: req.OccupancyMediumRatio,
		OccupancyHighRatio:   req.OccupancyHighRatio,
		WaitTimeMediumBound:  req.WaitTimeMediumBound,
		TillQueueThreshold:   req.TillQueueThreshold,
	}

	if err := rs.Footfall.Config.UpsertConfig(storeID, &config); err != nil {
		rs.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

type TillQueueRequest struct {
	TillNumber     int     `json:"tillNumber"`
	QueueLength    int     `json:"queueLength"`
	AvgServiceTime float64 `json:"avgServiceTime"`
	Status         string  `json:"status"`
}

type QueueDataRequest struct {
	TillQueues []TillQueueRequest `json:"tillQueues"`
}

type FlowDetailRequest struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type SampleRequest struct {
	Timestamp     time.Time           `json:"timestamp"`
	EntryCount    int                 `json:"entryCount"`
	ExitCount     int                 `json:"exitCount"`
	PosRate       float64             `json:"posRate"`
	DataType      string              `json:"dataType"`
	QueueData     *QueueDataRequest   `json:"queueData"`
	EntryDetails  []FlowDetailRequest `json:"entryDetails"`
	ExitDetails   []FlowDetailRequest `json:"exitDetails"`
	Weather       string              `json:"weather"`
	SpecialEvents string              `json:"specialEvents"`
}

var flowDetailSchema = z.Struct(z.Shape{
	"Location": z.String().Min(1).Required(),
	"Count":    z.Int().GTE(0),
})

var sampleRequestSchema = z.Struct(z.Shape{
	"Timestamp":  z.Time(),
	"EntryCount": z.Int().GTE(0),
	"ExitCount":  z.Int().GTE(0),
	"PosRate":    z.Float64().GTE(0),
	"DataType":   z.String().OneOf([]string{"realtime", "hourly", "daily"}),
	"QueueData": z.Ptr(z.Struct(z.Shape{
		"TillQueues": z.Slice(z.Struct(z.Shape{
			"TillNumber":     z.Int().GTE(1).Required(),
			"QueueLength":    z.Int().GTE(0),
			"AvgServiceTime": z.Float64().GTE(0),
			"Status":         z.String().OneOf([]string{"active", "inactive", "maintenance"}).Required(),
		})),
	})),
	"EntryDetails":  z.Slice(flowDetailSchema),
	"ExitDetails":   z.Slice(flowDetailSchema),
	"Weather":       z.String(),
	"SpecialEvents": z.String(),
})

func encodeDetails(details []FlowDetailRequest) string {
	if len(details) == 0 {
		return ""
	}
	encoded, err := json.Marshal(details)
	if err != nil {
		return ""
	}
	return string(encoded)
}

func (rs *RestfulServer) PostFootfall(c *gin.Context) {
	storeID := c.Param("store_id")

	if !rs.CheckStoreLimiter(storeID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req SampleRequest
	if err := sampleRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	input := models.Sample{
		Timestamp:     req.Timestamp,
		EntryCount:    req.EntryCount,
		ExitCount:     req.ExitCount,
		PosRate:       req.PosRate,
		DataType:      models.DataType(req.DataType),
		EntryDetails:  encodeDetails(req.EntryDetails),
		ExitDetails:   encodeDetails(req.ExitDetails),
		Weather:       req.Weather,
		SpecialEvents: req.SpecialEvents,
	}
	if req.QueueData != nil {
		for _, till := range req.QueueData.TillQueues {
			input.TillQueues = append(input.TillQueues, models.TillQueue{
				TillNumber:     till.TillNumber,
				QueueLength:    till.QueueLength,
				AvgServiceTime: till.AvgServiceTime,
				Status:         models.TillStatus(till.Status),
			})
		}
	}

	sample, queueMetrics, err := rs.Footfall.Sample.IngestSample(accountID(c), storeID, &input)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sample":        sample,
		"queue_metrics": queueMetrics,
	})
}

func (rs *RestfulServer) GetCurrentStats(c *gin.Context) {
	minutes := 60
	if raw := c.Query("minutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minutes must be a positive integer"})
			return
		}
		minutes = parsed
	}

	stats, err := rs.Footfall.Analytics.GetWindowStats(accountID(c), c.Param("store_id"), minutes)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (rs *RestfulServer) GetHistory(c *gin.Context) {
	query := models.HistoryQuery{}

	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
			return
		}
		query.Page = parsed
	}
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		query.Limit = parsed
	}

	var err error
	if query.StartDate, err = parseDateParam(c.Query("startDate")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate is not a valid date"})
		return
	}
	if query.EndDate, err = parseDateParam(c.Query("endDate")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate is not a valid date"})
		return
	}

	if raw := c.Query("dataType"); raw != "" {
		switch models.DataType(raw) {
		case models.DataTypeRealtime, models.DataTypeHourly, models.DataTypeDaily:
			query.DataType = models.DataType(raw)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "dataType must be one of realtime, hourly, daily"})
			return
		}
	}

	samples, total, err := rs.Footfall.Sample.GetStoreSamples(accountID(c), c.Param("store_id"), query)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"samples": samples,
		"total":   total,
	})
}

func (rs *RestfulServer) GetAnalytics(c *gin.Context) {
	period := models.Period(c.DefaultQuery("period", string(models.PeriodToday)))
	switch period {
	case models.PeriodToday, models.PeriodWeek, models.PeriodMonth:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be one of today, week, month"})
		return
	}

	groupBy := models.Granularity(c.DefaultQuery("groupBy", string(models.GroupByHour)))
	switch groupBy {
	case models.GroupByHour, models.GroupByDay:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupBy must be one of hour, day"})
		return
	}

	buckets, err := rs.Footfall.Analytics.GetRollup(accountID(c), c.Param("store_id"), period, groupBy)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	openOnly := c.Query("open") == "true"

	alerts, err := rs.Footfall.Alert.GetStoreAlerts(accountID(c), c.Param("store_id"), openOnly)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (rs *RestfulServer) alertIDParam(c *gin.Context) (uint, bool) {
	parsed, err := strconv.ParseUint(c.Param("alert_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alert_id must be a positive integer"})
		return 0, false
	}
	return uint(parsed), true
}

func (rs *RestfulServer) AcknowledgeAlert(c *gin.Context) {
	alertID, ok := rs.alertIDParam(c)
	if !ok {
		return
	}

	if err := rs.Footfall.Alert.AcknowledgeAlert(accountID(c), c.Param("store_id"), alertID); err != nil {
		rs.renderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (rs *RestfulServer) ResolveAlert(c *gin.Context) {
	alertID, ok := rs.alertIDParam(c)
	if !ok {
		return
	}

	if err := rs.Footfall.Alert.ResolveAlert(accountID(c), c.Param("store_id"), alertID); err != nil {
		rs.renderError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	storeID := c.Param("store_id")

	if _, err := rs.Footfall.Store.GetStore(accountID(c), storeID); err != nil {
		rs.renderError(c, err)
		return
	}

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(storeID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
