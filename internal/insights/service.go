package insights

import (
	"context"
	"time"

	"github.com/recircle-platform/recircle-backend/pkg/logger"
)

// DonationLocation is one heatmap point.
type DonationLocation struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Location string  `json:"location"`
	Quantity int     `json:"quantity"`
}

// CategoryCounts breaks a day's donations down by category.
type CategoryCounts struct {
	Clothing    int `json:"Clothing"`
	Electronics int `json:"Electronics"`
	Food        int `json:"Food"`
	Furniture   int `json:"Furniture"`
}

// DonationTrend is one day in the trend series.
type DonationTrend struct {
	Date       string         `json:"date"`
	Categories CategoryCounts `json:"categories"`
}

// ForecastItem is a predicted category volume for the next 30 days.
type ForecastItem struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// PartnerInsight summarizes a partner's claiming behavior.
type PartnerInsight struct {
	MostClaimed string `json:"mostClaimed"`
	ImpactScore int    `json:"impactScore"`
}

// AdminKPIs is the admin dashboard headline block.
type AdminKPIs struct {
	TotalDonations int     `json:"totalDonations"`
	WasteDiverted  float64 `json:"wasteDiverted"`
	ActivePartners int     `json:"activePartners"`
	AvgClaimTime   float64 `json:"avgClaimTime"`
}

// MapPoint is one marker on the admin map, either a partner site or a
// donation drop-off.
type MapPoint struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
}

// Service serves the analytics surface. Every endpoint returns curated
// demo data; the shapes are stable so a model-backed implementation can
// slot in without touching callers.
type Service interface {
	DonationLocations(ctx context.Context) ([]DonationLocation, error)
	DonationTrends(ctx context.Context) ([]DonationTrend, error)
	Forecast(ctx context.Context, partnerID int64) ([]ForecastItem, error)
	PartnerInsight(ctx context.Context, partnerID int64) (*PartnerInsight, error)
	AdminKPIs(ctx context.Context) (*AdminKPIs, error)
	AdminMapData(ctx context.Context) ([]MapPoint, error)
}

type service struct {
	logg *logger.Logger
	now  func() time.Time
}

func NewService(logg *logger.Logger) (Service, error) {
	return &service{logg: logg, now: time.Now}, nil
}

func (s *service) DonationLocations(ctx context.Context) ([]DonationLocation, error) {
	return []DonationLocation{
		{Lat: 40.7128, Lng: -74.0060, Location: "New York", Quantity: 50},
		{Lat: 34.0522, Lng: -118.2437, Location: "Los Angeles", Quantity: 30},
		{Lat: 41.8781, Lng: -87.6298, Location: "Chicago", Quantity: 25},
		{Lat: 29.7604, Lng: -95.3698, Location: "Houston", Quantity: 20},
		{Lat: 33.7490, Lng: -84.3880, Location: "Atlanta", Quantity: 35},
		{Lat: 25.7617, Lng: -80.1918, Location: "Miami", Quantity: 15},
		{Lat: 39.9526, Lng: -75.1652, Location: "Philadelphia", Quantity: 40},
		{Lat: 32.7767, Lng: -96.7970, Location: "Dallas", Quantity: 28},
	}, nil
}

// DonationTrends returns the last seven days, oldest first, each day
// stamped relative to the current date.
func (s *service) DonationTrends(ctx context.Context) ([]DonationTrend, error) {
	series := []CategoryCounts{
		{Clothing: 25, Electronics: 15, Food: 30, Furniture: 10},
		{Clothing: 30, Electronics: 20, Food: 35, Furniture: 12},
		{Clothing: 28, Electronics: 18, Food: 32, Furniture: 15},
		{Clothing: 35, Electronics: 22, Food: 40, Furniture: 18},
		{Clothing: 32, Electronics: 25, Food: 38, Furniture: 20},
		{Clothing: 40, Electronics: 28, Food: 45, Furniture: 22},
		{Clothing: 38, Electronics: 30, Food: 42, Furniture: 25},
	}

	start := s.now().AddDate(0, 0, -(len(series) - 1))
	trends := make([]DonationTrend, 0, len(series))
	for i, counts := range series {
		trends = append(trends, DonationTrend{
			Date:       start.AddDate(0, 0, i).Format("2006-01-02"),
			Categories: counts,
		})
	}
	return trends, nil
}

func (s *service) Forecast(ctx context.Context, partnerID int64) ([]ForecastItem, error) {
	switch partnerID {
	case 1:
		return []ForecastItem{
			{Category: "Clothing", Quantity: 60},
			{Category: "Food", Quantity: 65},
			{Category: "Electronics", Quantity: 20},
			{Category: "Furniture", Quantity: 15},
		}, nil
	case 2:
		return []ForecastItem{
			{Category: "Electronics", Quantity: 40},
			{Category: "Furniture", Quantity: 35},
			{Category: "Clothing", Quantity: 30},
			{Category: "Food", Quantity: 25},
		}, nil
	default:
		return []ForecastItem{
			{Category: "Clothing", Quantity: 45},
			{Category: "Electronics", Quantity: 28},
			{Category: "Food", Quantity: 52},
			{Category: "Furniture", Quantity: 22},
		}, nil
	}
}

func (s *service) PartnerInsight(ctx context.Context, partnerID int64) (*PartnerInsight, error) {
	switch partnerID {
	case 1:
		return &PartnerInsight{MostClaimed: "Clothing", ImpactScore: 85}, nil
	case 2:
		return &PartnerInsight{MostClaimed: "Electronics", ImpactScore: 75}, nil
	default:
		return &PartnerInsight{MostClaimed: "Food", ImpactScore: 65}, nil
	}
}

func (s *service) AdminKPIs(ctx context.Context) (*AdminKPIs, error) {
	return &AdminKPIs{
		TotalDonations: 1247,
		WasteDiverted:  623.5,
		ActivePartners: 12,
		AvgClaimTime:   2.3,
	}, nil
}

func (s *service) AdminMapData(ctx context.Context) ([]MapPoint, error) {
	return []MapPoint{
		{Lat: 40.7128, Lng: -74.0060, Type: "partner", Name: "Community Aid", Location: "New York"},
		{Lat: 34.0522, Lng: -118.2437, Type: "partner", Name: "Green Cycle", Location: "Los Angeles"},
		{Lat: 41.8781, Lng: -87.6298, Type: "partner", Name: "Eco Warriors", Location: "Chicago"},
		{Lat: 29.7604, Lng: -95.3698, Type: "partner", Name: "Food Bank Central", Location: "Houston"},
		{Lat: 40.7589, Lng: -73.9851, Type: "donation", Name: "Donation Center", Location: "Manhattan"},
		{Lat: 40.7505, Lng: -73.9934, Type: "donation", Name: "Clothing Drive", Location: "Brooklyn"},
		{Lat: 34.0736, Lng: -118.2400, Type: "donation", Name: "Electronics Hub", Location: "Hollywood"},
		{Lat: 34.1016, Lng: -118.3267, Type: "donation", Name: "Furniture Collection", Location: "Beverly Hills"},
	}, nil
}
