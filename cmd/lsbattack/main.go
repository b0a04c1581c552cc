package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"lsbattack/pkg/analyzer"
	"lsbattack/pkg/analyzer/image/spa"
	"lsbattack/pkg/config"
	"lsbattack/pkg/extractor"
	"lsbattack/pkg/extractor/image/bitplane"
	"lsbattack/pkg/filehandler"
	"lsbattack/pkg/logger"
	"lsbattack/pkg/models"
)

var (
	// Color printers
	infoColor    = color.New(color.FgBlue).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
	alertColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

func printInfo(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", infoColor("[*]"), fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successColor("[+]"), fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warningColor("[!]"), fmt.Sprintf(format, args...))
}

func printError(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", errorColor("[-]"), fmt.Sprintf(format, args...))
}

func printAlert(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", alertColor("[!!!]"), fmt.Sprintf(format, args...))
}

func main() {
	var (
		vaPath  = flag.String("va", "", "perform a 'Visual Attack' on a given image to extract bitplanes")
		spaPath = flag.String("spa", "", "perform statistical attack on a given image to determine if file contains embedded content")
	)
	flag.Parse()

	if (*vaPath == "") == (*spaPath == "") {
		fmt.Println("Usage:")
		fmt.Println("  lsbattack -va <image>")
		fmt.Println("  lsbattack -spa <image>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		printError("Failed to load config: %v", err)
		os.Exit(1)
	}
	logger.Configure(cfg.LogLevel)

	var ok bool
	if *vaPath != "" {
		ok = runVisualAttack(*vaPath, cfg)
	} else {
		ok = runSamplePairs(*spaPath, cfg)
	}
	if !ok {
		os.Exit(1)
	}
}

func runVisualAttack(filePath string, cfg *config.Config) bool {
	registry := extractor.NewRegistry()
	if err := registry.Register(bitplane.NewBitplaneExtractor()); err != nil {
		printError("Failed to register extractor: %v", err)
		return false
	}

	format, err := filehandler.DetectFileFormat(filePath)
	if err != nil {
		printError("Failed to detect file format: %v", err)
		return false
	}

	e := registry.GetExtractorByName(bitplane.ExtractorName, format)
	if e == nil {
		printWarning("No extractor available for format: %s", format)
		return false
	}

	result, err := e.Extract(filePath, extractor.ExtractionOptions{
		OutputDir: cfg.OutputDir,
		Workers:   cfg.Workers,
	})
	if err != nil {
		logger.WithError(err).WithField("extractor", e.Name()).Debug("extraction failed")
		printError("Visual attack failed: %v", err)
		return false
	}

	for _, path := range result.OutputFiles {
		printSuccess("%s saved", path)
	}
	return true
}

func runSamplePairs(filePath string, cfg *config.Config) bool {
	registry := analyzer.NewRegistry()
	if err := registry.Register(spa.NewSPAAnalyzer()); err != nil {
		printError("Failed to register analyzer: %v", err)
		return false
	}

	format, err := filehandler.DetectFileFormat(filePath)
	if err != nil {
		printError("Failed to detect file format: %v", err)
		return false
	}

	analyzers := registry.GetAnalyzersForFormat(format)
	if len(analyzers) == 0 {
		printWarning("No analyzers available for format: %s (supported: %s)",
			format, strings.Join(registry.GetSupportedFormats(), ", "))
		return false
	}

	options := analyzer.AnalysisOptions{
		Format:    format,
		Threshold: cfg.Threshold,
		Workers:   cfg.Workers,
	}

	ok := true
	for _, a := range analyzers {
		logger.WithField("analyzer", a.Name()).Debug("running analyzer")

		result, err := a.Analyze(filePath, options)
		if err != nil {
			logger.WithError(err).WithField("analyzer", a.Name()).Debug("analysis failed")
			printError("%s failed: %v", a.Name(), err)
			ok = false
			continue
		}
		displayAnalysisResult(result)
	}
	return ok
}

func displayAnalysisResult(result *models.AnalysisResult) {
	suspicious := result.SuspiciousChannels()
	if len(suspicious) == 0 {
		printInfo("%s is likely natural, i.e. no steganographic content", result.Filename)
		return
	}

	for _, c := range suspicious {
		printAlert("%s contains steganographic content in the %s plane", result.Filename, c.Channel)
		fmt.Printf("Estimated change-rate = %v\n", c.ChangeRate)
		fmt.Printf("Estimated embedded message in bpp = %.2f\n", c.EmbeddingRate)
	}
}
