// Command apriori mines a cafe-orders CSV for frequent coffee
// combinations and the association rules between them, printing the
// itemset and rule tables, a top-items bar chart, and optionally the
// rule network as a DOT file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/apriori/apriori"
	"github.com/katalvlaran/apriori/basket"
	"github.com/katalvlaran/apriori/dataset"
	"github.com/katalvlaran/apriori/report"
	"github.com/katalvlaran/apriori/rules"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("component", "apriori-cli")

	cfg := defaultConfig()

	configPath := flag.String("config", "", "optional YAML config file")
	csvPath := flag.String("csv", cfg.CSV, "cafe orders CSV file")
	minSupport := flag.Float64("min-support", cfg.MinSupport, "minimum itemset support (0.01–0.1)")
	minConfidence := flag.Float64("min-confidence", cfg.MinConfidence, "minimum rule threshold (0.1–1.0)")
	metricName := flag.String("metric", cfg.Metric, "rule metric: confidence, lift or support")
	topN := flag.Int("top", cfg.TopN, "how many items in the top-items chart")
	dotOut := flag.String("dot", cfg.DotOut, "write the rule network DOT to this file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Layering: defaults < YAML < explicitly set flags.
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			entry.Fatalf("%v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "csv":
			cfg.CSV = *csvPath
		case "min-support":
			cfg.MinSupport = *minSupport
		case "min-confidence":
			cfg.MinConfidence = *minConfidence
		case "metric":
			cfg.Metric = *metricName
		case "top":
			cfg.TopN = *topN
		case "dot":
			cfg.DotOut = *dotOut
		}
	})
	cfg.clamp(entry)

	metric, err := cfg.metric()
	if err != nil {
		entry.Fatalf("%v", err)
	}

	// Load and reduce the orders.
	cache := dataset.NewCache(logger.WithField("component", "dataset_cache"))
	txs, err := cache.Load(cfg.CSV)
	if err != nil {
		entry.Fatalf("load orders: %v", err)
	}
	orders, err := cache.Orders(cfg.CSV)
	if err != nil {
		entry.Fatalf("load orders: %v", err)
	}
	entry.WithFields(logrus.Fields{
		"orders":       len(orders),
		"transactions": len(txs),
	}).Info("dataset ready")

	// Encode and mine.
	m, err := basket.Encode(txs)
	if err != nil {
		entry.Fatalf("encode transactions: %v", err)
	}

	mopts := apriori.DefaultOptions()
	mopts.MinSupport = cfg.MinSupport
	fi, err := apriori.Mine(m, &mopts)
	if err != nil {
		entry.Fatalf("mine itemsets: %v", err)
	}
	entry.WithField("itemsets", fi.Len()).Info("mining done")

	ropts := rules.Options{Metric: metric, MinThreshold: cfg.MinConfidence}
	rs, err := rules.Generate(fi, &ropts)
	if err != nil {
		entry.Fatalf("generate rules: %v", err)
	}
	entry.WithField("rules", len(rs)).Info("rule generation done")

	// Render.
	fmt.Println("Frequent Itemsets")
	fmt.Println(report.ItemsetTable(fi))
	fmt.Println()
	fmt.Println("Association Rules")
	fmt.Println(report.RuleTable(rs))
	fmt.Println()
	fmt.Printf("Top %d Most Ordered Items\n", cfg.TopN)
	fmt.Println(report.TopItemsBar(dataset.TopItems(orders, cfg.TopN), 40))

	if cfg.DotOut != "" {
		dot, gerr := report.RuleGraph(rs)
		if gerr != nil {
			entry.Fatalf("rule graph: %v", gerr)
		}
		if werr := os.WriteFile(cfg.DotOut, []byte(dot), 0o644); werr != nil {
			entry.Fatalf("write %s: %v", cfg.DotOut, werr)
		}
		entry.WithField("path", cfg.DotOut).Info("rule network written")
	}
}
