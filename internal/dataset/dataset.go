// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset downloads the H&M recommender CSV datasets (articles,
// customers, transactions) and loads each one into a table.
//
// Every call fetches over the network and parses from scratch; nothing is
// cached, retried or validated. Failures surface as *NetworkError or
// *ParseError.
package dataset

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the repository that hosts the datasets.
const DefaultBaseURL = "https://repo.hops.works/dev/jdowling/h-and-m"

// Dataset identifies one of the remote CSV resources.
type Dataset int

const (
	Articles Dataset = iota
	Customers
	Transactions
)

var (
	names = [...]string{
		Articles:     "articles",
		Customers:    "customers",
		Transactions: "transactions",
	}
	files = [...]string{
		Articles:     "articles.csv",
		Customers:    "customers.csv",
		Transactions: "transactions_train.csv",
	}
)

// All returns every dataset in a fixed order.
func All() []Dataset {
	return []Dataset{Articles, Customers, Transactions}
}

// Parse maps a dataset name to its Dataset. Matching ignores case and
// surrounding whitespace.
func Parse(name string) (Dataset, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for d, s := range names {
		if s == n {
			return Dataset(d), nil
		}
	}
	return 0, fmt.Errorf("unknown dataset %q: use articles, customers, or transactions", name)
}

// String returns the dataset name.
func (d Dataset) String() string {
	if !d.valid() {
		return fmt.Sprintf("Dataset(%d)", int(d))
	}
	return names[d]
}

// FileName returns the CSV file name of the dataset in the repository.
func (d Dataset) FileName() string {
	if !d.valid() {
		return ""
	}
	return files[d]
}

// URL returns the fixed endpoint of the dataset.
func (d Dataset) URL() string {
	return urlFor(DefaultBaseURL, d)
}

func (d Dataset) valid() bool {
	return d >= Articles && d <= Transactions
}

func urlFor(base string, d Dataset) string {
	return strings.TrimRight(base, "/") + "/" + d.FileName()
}
