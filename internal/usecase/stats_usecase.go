package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Aggregation caps mirroring what the mobile dashboards render.
const (
	RankingLimit       = 10
	SimpleRankingLimit = 5
	StatsWindowSize    = 100
)

// --- Output DTOs ---
//
// The JSON field names mirror the mobile client's wire format; the
// dashboards consume these payloads as-is.

// OverviewStats is the system-wide monitoring summary. Averages cover the
// most recent readings window, rounded to one decimal.
type OverviewStats struct {
	TotalFarmers    int64     `json:"totalFarmers"`
	TotalCrops      int64     `json:"totalCrops"`
	TotalSensorData int64     `json:"totalSensorData"`
	AvgMoisture     float64   `json:"avgMoisture"`
	AvgTemperature  float64   `json:"avgTemperature"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// FarmerRankingEntry is one row of the farmer productivity ranking.
type FarmerRankingEntry struct {
	Nombre         string `json:"nombre"`
	Email          string `json:"email"`
	Ubicacion      string `json:"ubicacion"`
	TotalProyectos int64  `json:"totalProyectos"`
	CultivosUnicos int64  `json:"cultivosUnicos"`
}

// BiofertilizerStat is one row of the biofertilizer usage report.
type BiofertilizerStat struct {
	Biofertilizante   string `json:"biofertilizante"`
	TotalProyectos    int64  `json:"totalProyectos"`
	TotalAgricultores int64  `json:"totalAgricultores"`
}

// SimpleRankingEntry is the trimmed ranking row used by the compact
// dashboard.
type SimpleRankingEntry struct {
	Nombre         string `json:"nombre"`
	TotalProyectos int64  `json:"totalProyectos"`
}

// SimpleBiofertilizerEntry is the trimmed biofertilizer row used by the
// compact dashboard.
type SimpleBiofertilizerEntry struct {
	Biofertilizante string `json:"biofertilizante"`
	TotalProyectos  int64  `json:"totalProyectos"`
}

// SimpleGeneralStats is the totals block of the compact dashboard.
type SimpleGeneralStats struct {
	TotalAgricultores     int64 `json:"totalAgricultores"`
	TotalProyectos        int64 `json:"totalProyectos"`
	TotalBiofertilizantes int64 `json:"totalBiofertilizantes"`
}

// SimpleStats is the compact dashboard payload.
type SimpleStats struct {
	RankingAgricultores []*SimpleRankingEntry       `json:"rankingAgricultores"`
	Biofertilizantes    []*SimpleBiofertilizerEntry `json:"biofertilizantes"`
	General             SimpleGeneralStats          `json:"general"`
	FechaGeneracion     time.Time                   `json:"fechaGeneracion"`
}

// FarmerStatsProfile identifies the farmer a stats block describes.
type FarmerStatsProfile struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	MainCrop string `json:"mainCrop"`
}

// FarmerCropStats summarizes one farmer's crop records by status.
type FarmerCropStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Harvested int `json:"harvested"`
}

// FarmerSensorStats summarizes one farmer's recent readings window.
// NeedsWater counts readings with moisture below the irrigation threshold.
type FarmerSensorStats struct {
	Total          int     `json:"total"`
	AvgMoisture    float64 `json:"avgMoisture"`
	AvgTemperature float64 `json:"avgTemperature"`
	NeedsWater     int     `json:"needsWater"`
}

// FarmerStats is the per-farmer monitoring summary.
type FarmerStats struct {
	Farmer      FarmerStatsProfile `json:"farmer"`
	Crops       FarmerCropStats    `json:"crops"`
	SensorData  FarmerSensorStats  `json:"sensorData"`
	LastUpdated time.Time          `json:"lastUpdated"`
}

// StatsUsecase defines the read-only statistics operations backing the
// scientist dashboards.
type StatsUsecase interface {
	Overview(ctx context.Context) (*OverviewStats, error)
	Simple(ctx context.Context) (*SimpleStats, error)
	FarmersRanking(ctx context.Context) ([]*FarmerRankingEntry, error)
	BiofertilizerStats(ctx context.Context) ([]*BiofertilizerStat, error)
	FarmerStatsByID(ctx context.Context, farmerID uuid.UUID) (*FarmerStats, error)
}
