package mockapi

import (
	"sync"
	"time"

	"github.com/labstack/gommon/random"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
)

type account struct {
	domain.User
	Password string
}

// Store is the in-memory fixture state behind the mock routes. Everything is
// guarded by one mutex; contention is irrelevant at dev scale.
type Store struct {
	mu sync.RWMutex

	nextID int64

	users           map[int64]*account
	posts           map[int64]*domain.MarketPost
	interests       map[int64]*domain.Interest
	saccos          map[int64]*domain.Sacco
	memberships     map[int64]*domain.Membership
	loans           map[int64]*domain.Loan
	applications    map[int64]*domain.LoanApplication
	regions         map[int64]*domain.Region
	weather         map[int64]*domain.WeatherSnapshot
	recommendations map[int64]*domain.CropRecommendation
}

func NewStore() *Store {
	return &Store{
		users:           make(map[int64]*account),
		posts:           make(map[int64]*domain.MarketPost),
		interests:       make(map[int64]*domain.Interest),
		saccos:          make(map[int64]*domain.Sacco),
		memberships:     make(map[int64]*domain.Membership),
		loans:           make(map[int64]*domain.Loan),
		applications:    make(map[int64]*domain.LoanApplication),
		regions:         make(map[int64]*domain.Region),
		weather:         make(map[int64]*domain.WeatherSnapshot),
		recommendations: make(map[int64]*domain.CropRecommendation),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func ts(daysAgo int) domain.Timestamp {
	return domain.Timestamp{Time: time.Now().AddDate(0, 0, -daysAgo)}
}

// NewSeededStore returns a store with representative fixture data: an admin,
// two users, posts in every status, two saccos with loan products and
// applications, and three regions with weather and crop recommendations.
//
// Fixture passwords are plaintext on purpose; this store never leaves dev.
func NewSeededStore() *Store {
	s := NewStore()

	admin := &account{
		User: domain.User{
			ID: s.id(), Username: "admin", Email: "admin@agriconnect.local",
			UserType: constants.UserTypeAdmin, IsActive: true,
		},
		Password: "admin123",
	}
	wanjiku := &account{
		User: domain.User{
			ID: s.id(), Username: "wanjiku", Email: "wanjiku@agriconnect.local",
			UserType: constants.UserTypeUser, Region: "Central", IsActive: true,
		},
		Password: "farm123",
	}
	otieno := &account{
		User: domain.User{
			ID: s.id(), Username: "otieno", Email: "otieno@agriconnect.local",
			UserType: constants.UserTypeUser, Region: "Nyanza", IsActive: true,
		},
		Password: "farm123",
	}
	for _, a := range []*account{admin, wanjiku, otieno} {
		s.users[a.ID] = a
	}

	posts := []*domain.MarketPost{
		{
			ID: s.id(), UserID: wanjiku.ID, Title: "Maize seed, certified H614",
			Description: "Certified hybrid maize seed, 10kg bags", Price: 3200, Quantity: 40,
			Unit: "bag", Category: "seeds", Region: "Central", Type: domain.PostTypeProduct,
			Status: domain.PostStatusActive, Approved: true, ViewCount: 120, InterestCount: 3,
			CreatedAt: ts(4),
		},
		{
			ID: s.id(), UserID: wanjiku.ID, Title: "Fresh avocados",
			Description: "Hass avocados, picked this week", Price: 15, Quantity: 2000,
			Unit: "piece", Category: "produce", Region: "Central", Type: domain.PostTypeProduct,
			Status: domain.PostStatusPending, Approved: false, ViewCount: 8,
			CreatedAt: ts(1),
		},
		{
			ID: s.id(), UserID: otieno.ID, Title: "Tilapia fingerlings",
			Description: "Pond-raised fingerlings, sorted by size", Price: 8, Quantity: 5000,
			Unit: "piece", Category: "livestock", Region: "Nyanza", Type: domain.PostTypeProduct,
			Status: domain.PostStatusActive, Approved: true, ViewCount: 64, InterestCount: 1,
			CreatedAt: ts(9),
		},
		{
			ID: s.id(), UserID: admin.ID, Title: "Sorghum wanted for brewery contract",
			Description: "Buying white sorghum, moisture below 13%", Price: 45, Quantity: 10000,
			Unit: "kg", Category: "grains", Region: "Nyanza", Type: domain.PostTypeNeed,
			Status: domain.PostStatusActive, Approved: true, Priority: "high",
			CreatedAt: ts(6),
		},
	}
	for _, p := range posts {
		s.posts[p.ID] = p
	}

	seedInterest := &domain.Interest{
		ID: s.id(), PostID: posts[0].ID, User: &otieno.User,
		Message: "Interested in 10 bags, can collect", CreatedAt: ts(2),
	}
	s.interests[seedInterest.ID] = seedInterest

	saccos := []*domain.Sacco{
		{
			ID: s.id(), Name: "Kilimo Bora SACCO", RegistrationNumber: "CS/9921",
			Location: "Nyeri town", Region: "Central", FoundedDate: "2011-03-14",
			TotalMembers: 2, TotalAssets: 4_800_000, ContactEmail: "info@kilimobora.local",
			IsActive: true, CreatedAt: ts(400),
		},
		{
			ID: s.id(), Name: "Samaki Savings SACCO", RegistrationNumber: "CS/10453",
			Location: "Kisumu", Region: "Nyanza", FoundedDate: "2015-07-01",
			TotalMembers: 1, TotalAssets: 1_250_000, IsActive: true, CreatedAt: ts(250),
		},
	}
	for _, sc := range saccos {
		s.saccos[sc.ID] = sc
	}

	members := []*domain.Membership{
		{
			ID: s.id(), UserID: wanjiku.ID, SaccoID: saccos[0].ID, SaccoName: saccos[0].Name,
			MembershipID: newMembershipID(), MembershipType: "regular",
			Shares: 120, Savings: 54_000, IsActive: true,
		},
		{
			ID: s.id(), UserID: otieno.ID, SaccoID: saccos[1].ID, SaccoName: saccos[1].Name,
			MembershipID: newMembershipID(), MembershipType: "regular",
			Shares: 40, Savings: 18_500, IsActive: true,
		},
	}
	for _, m := range members {
		s.memberships[m.ID] = m
	}

	loan := &domain.Loan{
		ID: s.id(), SaccoID: saccos[0].ID, Name: "Planting season loan",
		InterestRate: 12, MinAmount: 5_000, MaxAmount: 200_000, RepaymentPeriod: 12,
		IsActive: true,
	}
	s.loans[loan.ID] = loan

	applications := []*domain.LoanApplication{
		{
			ID: s.id(), UserID: wanjiku.ID, User: &wanjiku.User, LoanID: loan.ID,
			SaccoID: saccos[0].ID, Amount: 60_000, Purpose: "Fertilizer and seed",
			Period: 10, Status: domain.LoanStatusPending, ApplicationDate: ts(3),
		},
		{
			ID: s.id(), UserID: wanjiku.ID, User: &wanjiku.User, LoanID: loan.ID,
			SaccoID: saccos[0].ID, Amount: 25_000, Purpose: "Irrigation pump repair",
			Period: 6, Status: domain.LoanStatusApproved, ApplicationDate: ts(40),
			ApprovalDate: ts(35),
		},
	}
	for _, a := range applications {
		s.applications[a.ID] = a
	}

	regions := []*domain.Region{
		{ID: s.id(), Name: "Central Highlands", Latitude: -0.42, Longitude: 36.95, Altitude: 1800, SoilType: "nitisol", AverageRainfall: 1200},
		{ID: s.id(), Name: "Lake Basin", Latitude: -0.09, Longitude: 34.77, Altitude: 1150, SoilType: "vertisol", AverageRainfall: 1400},
		{ID: s.id(), Name: "Coastal Lowlands", Latitude: -4.05, Longitude: 39.66, Altitude: 50, SoilType: "arenosol", AverageRainfall: 1050},
	}
	for _, r := range regions {
		s.regions[r.ID] = r
		s.weather[r.ID] = &domain.WeatherSnapshot{
			RegionID: r.ID, Temperature: 22.5, Humidity: 68, Rainfall: 4.2,
			WindSpeed: 11, WindDirection: 140, WeatherCondition: "partly cloudy",
			Date: domain.Timestamp{Time: time.Now()},
		}
	}

	recommendations := []*domain.CropRecommendation{
		{ID: s.id(), RegionID: regions[0].ID, CropName: "Maize", Season: "long rains", PlantingMonth: "March", HarvestingMonth: "August"},
		{ID: s.id(), RegionID: regions[0].ID, CropName: "Irish potato", Season: "short rains", PlantingMonth: "October", HarvestingMonth: "January"},
		{ID: s.id(), RegionID: regions[1].ID, CropName: "Sorghum", Season: "long rains", PlantingMonth: "March", HarvestingMonth: "July"},
		{ID: s.id(), RegionID: regions[2].ID, CropName: "Cashew", Season: "long rains", PlantingMonth: "April", HarvestingMonth: "November"},
	}
	for _, rec := range recommendations {
		s.recommendations[rec.ID] = rec
	}

	return s
}

func newMembershipID() string {
	return "MEM-" + random.String(8, random.Uppercase, random.Numeric)
}
