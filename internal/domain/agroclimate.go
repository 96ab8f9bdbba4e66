package domain

type Region struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude,omitempty"`
	Longitude       float64 `json:"longitude,omitempty"`
	Altitude        float64 `json:"altitude,omitempty"`
	SoilType        string  `json:"soil_type,omitempty"`
	AverageRainfall float64 `json:"average_rainfall,omitempty"`
	Description     string  `json:"description,omitempty"`
}

// WeatherSnapshot is ephemeral: fetched fresh per region, never persisted.
type WeatherSnapshot struct {
	RegionID         int64     `json:"region_id"`
	Temperature      float64   `json:"temperature"`
	Humidity         float64   `json:"humidity"`
	Rainfall         float64   `json:"rainfall"`
	WindSpeed        float64   `json:"wind_speed"`
	WindDirection    float64   `json:"wind_direction"`
	WeatherCondition string    `json:"weather_condition"`
	Date             Timestamp `json:"date,omitempty"`
}

type CropRecommendation struct {
	ID                int64  `json:"id"`
	RegionID          int64  `json:"region_id"`
	CropName          string `json:"crop_name"`
	Season            string `json:"season"`
	PlantingMonth     string `json:"planting_month,omitempty"`
	HarvestingMonth   string `json:"harvesting_month,omitempty"`
	ExpectedYield     string `json:"expected_yield,omitempty"`
	WaterRequirements string `json:"water_requirements,omitempty"`
	SoilRequirements  string `json:"soil_requirements,omitempty"`
	Description       string `json:"description,omitempty"`
}

type SeasonalAdvice struct {
	RegionID int64    `json:"region_id"`
	Month    int      `json:"month"`
	Advice   []string `json:"advice"`
}
