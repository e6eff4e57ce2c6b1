package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/davitra/go-backoffice/app/configs"
	"github.com/davitra/go-backoffice/app/db/seeders"
	"github.com/davitra/go-backoffice/app/imports"
	"github.com/davitra/go-backoffice/app/ledger"
	"github.com/davitra/go-backoffice/app/models"
	"github.com/davitra/go-backoffice/app/models/migrations"
	"github.com/davitra/go-backoffice/app/repositories"
	"github.com/davitra/go-backoffice/app/utils/format"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed reference data and sample records",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:      "import-products",
				Usage:     "Bulk import products from a spreadsheet (.xlsx or .csv)",
				ArgsUsage: "<file>",
				Action: func(ctx context.Context, c *cli.Command) error {
					path := c.Args().First()
					if path == "" {
						return errors.New("usage: import-products <file>")
					}
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					importer := imports.NewProductImporter(
						repositories.NewProductRepository(db),
						repositories.NewProductImageRepository(db),
						repositories.NewCategoryRepository(db),
						repositories.NewBrandRepository(db),
						repositories.NewTaxRepository(db),
						configs.GetLogger(),
						configs.LoadENV.ImportChunkSize,
					)
					report, err := importer.ImportFile(ctx, path)
					if err != nil {
						return err
					}
					printReport(report)
					return nil
				},
			},
			{
				Name:      "import-users",
				Usage:     "Bulk import users from a spreadsheet (.xlsx or .csv)",
				ArgsUsage: "<file>",
				Action: func(ctx context.Context, c *cli.Command) error {
					path := c.Args().First()
					if path == "" {
						return errors.New("usage: import-users <file>")
					}
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					importer := imports.NewUserImporter(
						repositories.NewUserRepository(db),
						repositories.NewRoleRepository(db),
						configs.GetLogger(),
						configs.LoadENV.ImportChunkSize,
					)
					report, err := importer.ImportFile(ctx, path)
					if err != nil {
						return err
					}
					printReport(report)
					return nil
				},
			},
			{
				Name:      "import-statements",
				Usage:     "Load bank/book statement lines from a spreadsheet (.xlsx or .csv)",
				ArgsUsage: "<file>",
				Action: func(ctx context.Context, c *cli.Command) error {
					path := c.Args().First()
					if path == "" {
						return errors.New("usage: import-statements <file>")
					}
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					importer := imports.NewStatementImporter(
						repositories.NewStatementLineRepository(db),
						configs.GetLogger(),
						configs.LoadENV.ImportChunkSize,
					)
					report, err := importer.ImportFile(ctx, path)
					if err != nil {
						return err
					}
					printReport(report)
					return nil
				},
			},
			{
				Name:      "post-journal",
				Usage:     "Post a balanced manual journal from a CSV of entries",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "date", Usage: "journal date (YYYY-MM-DD), defaults to today"},
					&cli.StringFlag{Name: "notes", Usage: "free-form journal notes"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					path := c.Args().First()
					if path == "" {
						return errors.New("usage: post-journal <file>")
					}
					rows, err := imports.ReadRows(path)
					if err != nil {
						return err
					}
					entries := make([]models.JournalEntry, 0, len(rows))
					for _, row := range rows {
						entries = append(entries, models.JournalEntry{
							AccountCode: row.Get("account"),
							Description: row.Get("description"),
							Debit:       imports.ParseDecimal(row.Get("debit")),
							Credit:      imports.ParseDecimal(row.Get("credit")),
						})
					}

					journalDate := time.Now()
					if raw := c.String("date"); raw != "" {
						parsed, err := time.Parse("2006-01-02", raw)
						if err != nil {
							return fmt.Errorf("invalid --date %q: %w", raw, err)
						}
						journalDate = parsed
					}

					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					svc := ledger.NewJournalService(repositories.NewJournalRepository(db), configs.GetLogger())
					journal, err := svc.Post(ctx, ledger.NewJournal{
						JournalDate: journalDate,
						Notes:       c.String("notes"),
						Entries:     entries,
					})
					if err != nil {
						return err
					}
					fmt.Printf("Posted %s with %d entries, total %s\n",
						journal.JournalNumber, len(journal.Entries), format.Money(journal.TotalAmount))
					return nil
				},
			},
			{
				Name:  "reconcile",
				Usage: "Auto-match and commit bank reconciliation for an account",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "account", Usage: "account id", Required: true},
					&cli.BoolFlag{Name: "commit", Usage: "commit matched lines as reconciled"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					svc := reconcileService(db)
					accountID := uint(c.Uint("account"))

					pairs, err := svc.AutoMatch(ctx, accountID)
					if err != nil {
						return err
					}
					fmt.Printf("Matched %d pairs on account %d\n", pairs, accountID)

					if c.Bool("commit") {
						lines, err := svc.Commit(ctx, accountID)
						if err != nil {
							return err
						}
						fmt.Printf("Reconciled %d lines\n", lines)
					}
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func reconcileService(db *gorm.DB) *ledger.ReconcileService {
	return ledger.NewReconcileService(repositories.NewStatementLineRepository(db), configs.GetLogger())
}

func printReport(report *imports.Report) {
	fmt.Printf("Rows: %d  Imported: %d  Failed: %d\n", report.TotalRows, report.Imported, report.Failed())
	for _, msg := range report.Errors {
		fmt.Println(msg)
	}
}
