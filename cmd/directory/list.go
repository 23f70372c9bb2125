package main

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogmodel "bagelhole-directory/internal/domains/catalog/model"
	"bagelhole-directory/internal/shared/utils"
)

var (
	listNeighborhood string
	listPrice        string
	listTag          string
	listFeatures     []string
	listSort         string
	listPage         int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the restaurant catalog",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listNeighborhood, "neighborhood", "", "filter by neighborhood")
	listCmd.Flags().StringVar(&listPrice, "price", "", "filter by price tier ($..$$$$)")
	listCmd.Flags().StringVar(&listTag, "tag", "", "filter by tag")
	listCmd.Flags().StringSliceVar(&listFeatures, "feature", nil, "require a feature flag (e.g. veganOptions, outdoorSeating); repeatable")
	listCmd.Flags().StringVar(&listSort, "sort", catalogmodel.SortByName, "sort: name, priceLow, priceHigh, neighborhood")
	listCmd.Flags().IntVar(&listPage, "page", 1, "result page")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	page, err := app.CatalogService.List(ctx, catalogmodel.ListRequest{
		Neighborhood: listNeighborhood,
		Price:        listPrice,
		Tag:          listTag,
		Features:     listFeatures,
		Sort:         listSort,
		Page:         listPage,
	})
	if err != nil {
		return err
	}

	if page.Pagination.Total == 0 {
		fmt.Println("No restaurants match those filters.")
		return nil
	}

	for _, r := range page.Restaurants {
		reviews := app.ReviewService.DisplayReviews(ctx, &r)
		summary := app.ReviewService.Summary(reviews)

		rating := "No ratings yet"
		if summary.HasRatings() {
			rating = fmt.Sprintf("%s %.1f (%s)", stars(summary.Average), summary.Average, utils.FormatCount(summary.Count))
		}

		fmt.Printf("%-10s %-28s %-16s %-5s %s\n", r.ID, r.Name, r.Neighborhood, r.Price, rating)
		if snippet := utils.FirstSentence(r.EditorialReview); snippet != "" {
			fmt.Printf("           %s\n", snippet)
		}
	}

	p := page.Pagination
	fmt.Printf("\nPage %d of %d (%d total)\n", p.Page, p.TotalPages, p.Total)
	return nil
}
