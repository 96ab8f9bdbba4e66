package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shamsy-hassan/FSH-sub001/internal/controller"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func renderMarket(ctrl *controller.MarketController) {
	stats := ctrl.DeriveStats()
	fmt.Printf("posts: %d total, %d available, %d pending approval, %d interests, revenue %s\n\n",
		stats.Total, stats.Available, stats.PendingApproval, stats.TotalInterests, stats.Revenue.StringFixed(2))

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tSTATUS\tPRICE\tQTY\tREGION")
	for _, post := range ctrl.Posts() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%.0f\t%s\n",
			post.ID, post.Title, post.Type, post.Status, post.Price, post.Quantity, post.Region)
	}
	_ = w.Flush()
}

func renderSaccos(saccos []domain.Sacco) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tREGION\tMEMBERS\tASSETS\tACTIVE")
	for _, sacco := range saccos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.0f\t%t\n",
			sacco.ID, sacco.Name, sacco.Region, sacco.TotalMembers, sacco.TotalAssets, sacco.IsActive)
	}
	_ = w.Flush()
}

func renderClimate(ctrl *controller.AgroClimateController, chart []controller.SeasonCount) {
	w := newTable()
	fmt.Fprintln(w, "ID\tREGION\tSOIL\tRAINFALL")
	for _, region := range ctrl.Regions() {
		marker := ""
		if region.ID == ctrl.Selected() {
			marker = " *"
		}
		fmt.Fprintf(w, "%d\t%s%s\t%s\t%.0f\n", region.ID, region.Name, marker, region.SoilType, region.AverageRainfall)
	}
	_ = w.Flush()

	if weather := ctrl.Weather(); weather != nil {
		fmt.Printf("\nweather: %.1f°C, humidity %.0f%%, %s\n",
			weather.Temperature, weather.Humidity, weather.WeatherCondition)
	}

	recommendations := ctrl.Recommendations()
	if len(recommendations) > 0 {
		fmt.Println("\ncrop recommendations:")
		for _, rec := range recommendations {
			fmt.Printf("  %s (%s): plant %s, harvest %s\n",
				rec.CropName, rec.Season, rec.PlantingMonth, rec.HarvestingMonth)
		}
	}

	if len(chart) > 0 {
		fmt.Println("\nrecommendations by season:")
		for _, bar := range chart {
			fmt.Printf("  %-14s %s (%d)\n", bar.Season, strings.Repeat("#", bar.Count), bar.Count)
		}
	}
}

func renderUserBoard(overview *domain.UserOverview) {
	if overview == nil {
		return
	}
	fmt.Printf("active posts: %d\ninterests received: %d\nsacco memberships: %d\ntotal savings: %.2f\n",
		overview.ActivePosts, overview.TotalInterest, overview.Memberships, overview.TotalSavings)
}

func renderAdminBoard(ctrl *controller.AdminBoardController) {
	headline := ctrl.Headline()
	fmt.Printf("users: %d\npending work: %d\nactive saccos: %d\norders today: %d\n",
		headline.Users, headline.PendingWork, headline.ActiveSaccos, headline.OrdersToday)
}
