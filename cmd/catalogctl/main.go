// catalogctl maintains the product catalog file from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rafaelleal24/catalog/internal/adapters/jsonstore"
	"github.com/rafaelleal24/catalog/internal/core/domain"
)

var (
	dataDir      string
	productsFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Maintain the product catalog file",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "data", "directory holding the catalog file")
	rootCmd.PersistentFlags().StringVar(&productsFile, "file", "products.json", "catalog file name")

	rootCmd.AddCommand(newSeedCmd(), newVerifyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSeedCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a catalog of generated products",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := jsonstore.NewFileStore(dataDir)
			repo := jsonstore.NewProductRepository(store, productsFile)

			ctx := context.Background()
			for i := 0; i < count; i++ {
				product, err := seedProduct(i)
				if err != nil {
					return fmt.Errorf("building product %d: %w", i, err)
				}
				if err := repo.Save(ctx, product); err != nil {
					return fmt.Errorf("saving product %s: %w", product.ID, err)
				}
			}

			fmt.Printf("seeded %d products into %s/%s\n", count, dataDir, productsFile)
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 20, "number of products to generate")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Report valid and invalid records in the catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := jsonstore.NewFileStore(dataDir)

			records, err := store.Read(context.Background(), productsFile)
			if err != nil {
				return err
			}

			valid, invalid := 0, 0
			for i, raw := range records {
				if _, err := jsonstore.ToDomain(raw); err != nil {
					invalid++
					fmt.Printf("record %d: %v\n", i, err)
					continue
				}
				valid++
			}

			fmt.Printf("%d records: %d valid, %d invalid\n", len(records), valid, invalid)
			if invalid > 0 {
				return fmt.Errorf("catalog holds %d invalid records", invalid)
			}
			return nil
		},
	}
}

var seedCategories = []string{"electronics", "books", "toys", "home"}

var seedStatuses = []domain.Status{
	domain.StatusActive,
	domain.StatusActive,
	domain.StatusActive,
	domain.StatusPending,
	domain.StatusInactive,
}

func seedProduct(i int) (*domain.Product, error) {
	id, err := domain.ParseProductID(fmt.Sprintf("MLA%06d", 100000+i))
	if err != nil {
		return nil, err
	}

	amount := decimal.NewFromInt(int64(100 + i*25))
	var price domain.Price
	if i%3 == 0 {
		price, err = domain.NewDiscountedPrice(amount, "ARS", amount.Mul(decimal.NewFromFloat(1.25)))
	} else {
		price, err = domain.NewPrice(amount, "ARS")
	}
	if err != nil {
		return nil, err
	}

	stock, err := domain.NewStock(i % 7)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return domain.NewProduct(
		id,
		fmt.Sprintf("Sample product %d", i+1),
		fmt.Sprintf("Generated catalog entry number %d", i+1),
		price,
		seedCategories[i%len(seedCategories)],
		seedStatuses[i%len(seedStatuses)],
		stock,
		now,
		now,
	), nil
}
