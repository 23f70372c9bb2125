package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	reviewmodel "bagelhole-directory/internal/domains/review/model"
	reviewservice "bagelhole-directory/internal/domains/review/service"
	"bagelhole-directory/internal/shared/utils"
)

var (
	showSort       string
	showStars      int
	showPhotosOnly bool
)

var showCmd = &cobra.Command{
	Use:   "show <restaurant-id>",
	Short: "Show one restaurant with its reviews and rating breakdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showSort, "sort", reviewmodel.SortNewest, "review sort: newest, highest, lowest, photos")
	showCmd.Flags().IntVar(&showStars, "stars", 0, "only reviews in this star bucket (1-5)")
	showCmd.Flags().BoolVar(&showPhotosOnly, "photos-only", false, "only reviews with photos")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	r, err := app.CatalogService.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\n", r.Name, strings.Repeat("=", len(r.Name)))
	if r.LocationText != "" || r.Price != "" {
		fmt.Printf("%s %s\n", r.LocationText, r.Price)
	}
	if len(r.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	if len(r.Amenities) > 0 {
		fmt.Printf("Amenities: %s\n", strings.Join(r.Amenities, ", "))
	}
	if r.EditorialReview != "" {
		fmt.Printf("\n%s\n", r.EditorialReview)
	}

	all := app.ReviewService.DisplayReviews(ctx, r)
	summary := app.ReviewService.Summary(all)

	fmt.Println()
	if !summary.HasRatings() {
		fmt.Println("No ratings yet. Be the first to review.")
	} else {
		fmt.Printf("%s %.1f / 5 — %s\n\n", stars(summary.Average), summary.Average, utils.FormatCount(summary.Count))
		for b := 5; b >= 1; b-- {
			count := summary.Histogram[b]
			fmt.Printf("%d ★ %-30s %d\n", b, bar(count, summary.Count), count)
		}
	}

	if photos := reviewservice.CollectPhotos(all); len(photos) > 0 {
		fmt.Printf("\n%d reviewer photos\n", len(photos))
	}

	shown, err := reviewservice.ApplyControls(all, reviewmodel.DisplayControls{
		Sort:           showSort,
		Stars:          showStars,
		WithPhotosOnly: showPhotosOnly,
	})
	if err != nil {
		return err
	}

	fmt.Printf("\n%d total, showing %d\n", len(all), len(shown))
	for _, rv := range shown {
		fmt.Printf("\n%s — %.1f/5 — %s\n", rv.Name, rv.Rating, rv.CreatedAt.Time().Format("Jan 2, 2006"))
		fmt.Println(rv.Text)
		if len(rv.Photos) > 0 {
			fmt.Printf("(%d photos)\n", len(rv.Photos))
		}
	}

	return nil
}

// stars renders a rating as a five-glyph bar, half-up per bucket.
func stars(rating float64) string {
	full := reviewservice.Bucket(rating)
	if rating <= 0 {
		full = 0
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

func bar(count, total int) string {
	if total == 0 {
		return ""
	}
	return strings.Repeat("#", count*30/total)
}
