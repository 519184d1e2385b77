package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"testforge/internal/adapter"
	"testforge/internal/adapter/docx"
	"testforge/internal/adapter/quizgen"
	"testforge/internal/config"
	"testforge/internal/dto"
	"testforge/internal/logger"
	"testforge/internal/service"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

type options struct {
	input        string
	title        string
	numQuestions int
	difficulty   string
	mode         string
	gradeLevel   string
	explanations bool
	docxPath     string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("generate_quiz", flag.ContinueOnError)
	opts := &options{}
	fs.StringVarP(&opts.input, "in", "i", "-", "lesson text file (- for stdin)")
	fs.StringVarP(&opts.title, "title", "t", "", "quiz title")
	fs.IntVarP(&opts.numQuestions, "questions", "n", 10, "number of questions (5, 10, 15 or 20)")
	fs.StringVar(&opts.difficulty, "difficulty", "medium", "easy, medium or hard")
	fs.StringVar(&opts.mode, "mode", "mixed", "mixed or mcq")
	fs.StringVar(&opts.gradeLevel, "grade", "high", "middle, high or college")
	fs.BoolVar(&opts.explanations, "explanations", false, "include an EXPLANATIONS section")
	fs.StringVar(&opts.docxPath, "docx", "", "also write the quiz to this .docx file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func main() {
	_ = godotenv.Load()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	if err := run(context.Background(), cfg, opts, os.Stdout); err != nil {
		log.Error("Quiz generation failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts *options, out io.Writer) error {
	log := logger.Get()

	sourceText, err := readInput(opts.input)
	if err != nil {
		return fmt.Errorf("read lesson text: %w", err)
	}

	counterStore, closeCounters, err := adapter.NewCounterStore(ctx, cfg.Counter, cfg.Redis)
	if err != nil {
		log.Warn("Counter store unavailable, usage will not be recorded", zap.Error(err))
		counterStore = nil
	}
	defer closeCounters()

	_, credentialName := cfg.Generation.Credential()
	generator, err := quizgen.New(ctx, cfg.Generation, log)
	if err != nil {
		return fmt.Errorf("initialize %s generator (check %s): %w", cfg.Generation.Provider, credentialName, err)
	}

	usage := service.NewUsageService(counterStore, cfg.Counter.BucketTTL)
	quizService := service.NewQuizService(generator, usage, credentialName)

	resp, err := quizService.GenerateQuiz(ctx, &dto.GenerateQuizRequest{
		Title:        opts.title,
		SourceText:   sourceText,
		NumQuestions: opts.numQuestions,
		Difficulty:   opts.difficulty,
		Mode:         opts.mode,
		GradeLevel:   opts.gradeLevel,
		Explanations: opts.explanations,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, resp.Output)

	if opts.docxPath == "" {
		return nil
	}

	exportService := service.NewExportService(docx.NewRenderer(), cfg.Export)
	filename := opts.title
	if filename == "" {
		filename = resp.Title
	}
	res, err := exportService.Export(ctx, &dto.ExportRequest{OutputText: resp.Output, Filename: filename})
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.docxPath, res.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.docxPath, err)
	}
	abs, _ := filepath.Abs(opts.docxPath)
	log.Info("Quiz exported", zap.String("path", abs), zap.Int("bytes", len(res.Content)))
	return nil
}
