package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"resume-extract/internal/experience"
	"resume-extract/internal/storage"
)

// Re-runs the employment-history extraction over stored CVs and rewrites
// their positions. Useful after heuristics change: old uploads pick up the
// new pipeline without being re-uploaded.
func main() {
	var dryRun bool
	var limit int
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not persist updates; just print changes")
	flag.IntVar(&limit, "limit", 200, "Max number of CVs to process in one run")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	log.Printf("Connecting to DB...")
	db, err := storage.NewDB(dbURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	extractor := experience.NewExtractor()
	ctx := context.Background()

	files, err := db.ListCVFiles(ctx, limit)
	if err != nil {
		log.Fatalf("failed to list CVs: %v", err)
	}
	log.Printf("Found %d stored CVs (limit %d)", len(files), limit)

	updated := 0
	for _, f := range files {
		text, err := db.GetCVText(ctx, f.ID)
		if err != nil {
			log.Printf("CV %d: failed to load text: %v", f.ID, err)
			continue
		}
		if text == "" {
			log.Printf("CV %d: no parsed text, skipping", f.ID)
			continue
		}

		result := extractor.Extract(text)

		existing, err := db.ListPositionsForCV(ctx, f.ID)
		if err != nil {
			log.Printf("CV %d: failed to load existing positions: %v", f.ID, err)
			continue
		}

		log.Printf("CV %d (%s): %d positions -> %d positions, %d months total",
			f.ID, f.Filename, len(existing), len(result.Positions), result.TotalExperienceMonths)

		if dryRun {
			for _, p := range result.Positions {
				log.Printf("  would save: %q at %q (%s - %s)", p.JobTitle, p.Employer, p.StartDate, p.EndDate)
			}
			continue
		}

		if err := db.DeletePositionsForCV(ctx, f.ID); err != nil {
			log.Printf("CV %d: failed to clear positions: %v", f.ID, err)
			continue
		}
		for _, p := range result.Positions {
			sp := toStoredPosition(f.ID, p)
			if _, err := db.SavePosition(ctx, sp); err != nil {
				log.Printf("CV %d: failed to save position %q: %v", f.ID, p.JobTitle, err)
			}
		}
		if err := db.UpdateCVSummary(ctx, f.ID, result.TotalExperienceMonths, result.CurrentJobRole); err != nil {
			log.Printf("CV %d: failed to save summary: %v", f.ID, err)
		}
		updated++
	}

	if dryRun {
		log.Printf("Dry run complete (%d CVs inspected). Re-run with -dry-run=false to persist.", len(files))
	} else {
		log.Printf("Backfill complete: %d CVs updated", updated)
	}
}

func toStoredPosition(cvID int64, p experience.Position) *storage.StoredPosition {
	sp := &storage.StoredPosition{
		CVFileID:       cvID,
		JobTitle:       p.JobTitle,
		Employer:       p.Employer,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		StartYear:      p.Start.Year,
		StartMonth:     p.Start.Month,
		EndYear:        p.End.Year,
		EndMonth:       p.End.Month,
		IsCurrent:      p.IsCurrent,
		Description:    p.Description,
		EmploymentType: p.EmploymentType,
	}
	if p.Location != nil {
		sp.Municipality = p.Location.Municipality
		sp.Region = p.Location.Region
	}
	return sp
}
