package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/SFA16SCM21C/Finagent/internal/category"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List known provider codes and their simplified categories",
		Run: func(_ *cobra.Command, _ []string) {
			codes := category.Codes()
			sort.Strings(codes)
			for _, code := range codes {
				simplified, _ := category.Lookup(code)
				fmt.Printf("%-22s %s\n", code, simplified)
			}
		},
	}
}
