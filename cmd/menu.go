package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"post-catering/catalog"
	"post-catering/outbound/sqlgen"
)

// normalizedTables lists every table derived from the seed payload,
// children first so a plain per-table delete order would also be valid.
var normalizedTables = []string{
	"menu_section_tier_bullets",
	"menu_section_tier_constraints",
	"menu_section_tiers",
	"menu_section_include_groups",
	"menu_section_rows",
	"menu_section_columns",
	"menu_sections",
	"menu_intro_bullets",
	"menu_intro_blocks",
	"menu_catalogs",
	"formal_plan_option_constraints",
	"formal_plan_option_details",
	"formal_plan_options",
	"menu_option_group_items",
	"menu_option_groups",
	"menu_items",
}

type menuAdminResult struct {
	Ok    bool     `json:"ok,omitempty"`
	Error string   `json:"error,omitempty"`
	Steps []string `json:"steps"`
}

func runMenuAdminCmd(ctx context.Context, applySchema, reset, seed bool) {
	cfg := newCfg("env")
	cfg.SetDefault("menu.schema_path", "sql/schema.sql")
	cfg.SetDefault("menu.seed_path", "sql/menu_seed_payload.json")

	db := newDb(cfg)
	defer db.Close()

	querier := sqlgen.New(db)

	steps := []string{}

	if applySchema {
		count, err := applySchemaStatements(ctx, db, cfg.GetString("menu.schema_path"))
		if err != nil {
			log.Fatalln("unable to apply schema", err)
		}
		steps = append(steps, fmt.Sprintf("applied_schema_statements:%d", count))
	}

	if reset {
		truncate := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(normalizedTables, ", "))
		if _, err := db.Exec(ctx, truncate); err != nil {
			log.Fatalln("unable to reset normalized tables", err)
		}
		steps = append(steps, "reset_normalized_tables")
	}

	if seed {
		seedPath := cfg.GetString("menu.seed_path")
		data, err := os.ReadFile(seedPath)
		if err != nil {
			slog.Error("menu seed payload missing", slog.String("seed_path", seedPath), slog.Any("error", err))
			printMenuAdminResult(menuAdminResult{Error: "Menu seed payload not found.", Steps: steps})
			os.Exit(1)
		}

		payload, err := catalog.ParseSeedPayload(data)
		if err != nil {
			log.Fatalln("unable to parse menu seed payload", err)
		}

		itemColumns, err := querier.ColumnExists(ctx, "menu_items", "item_type")
		if err != nil {
			log.Fatalln("unable to probe menu_items schema", err)
		}

		seeder := catalog.NewSeeder(querier, itemColumns)
		if err := seeder.SeedFromPayload(ctx, payload); err != nil {
			log.Fatalln("unable to seed menu tables", err)
		}

		assembler := catalog.NewAssembler(querier, itemColumns)
		payloadStore := catalog.NewPayloadStore(cfg, assembler, querier, nil)
		if _, err := payloadStore.Refresh(ctx); err != nil {
			log.Fatalln("unable to refresh catalog payload snapshot", err)
		}

		steps = append(steps, "seeded_from_payload")
	}

	printMenuAdminResult(menuAdminResult{Ok: true, Steps: steps})
}

func printMenuAdminResult(result menuAdminResult) {
	out, err := json.Marshal(result)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(string(out))
}

// applySchemaStatements runs the DDL file statement by statement, skipping
// the slide-content inserts that belong to the media CMS, not the menu.
func applySchemaStatements(ctx context.Context, db sqlgen.DBTX, schemaPath string) (int, error) {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return 0, fmt.Errorf("read schema file: %w", err)
	}

	count := 0
	for _, statement := range splitSqlStatements(string(data)) {
		if strings.HasPrefix(strings.ToLower(statement), "insert into slides") {
			continue
		}
		if _, err := db.Exec(ctx, statement); err != nil {
			return count, fmt.Errorf("execute schema statement: %w", err)
		}
		count++
	}
	return count, nil
}

// splitSqlStatements splits on semicolons outside quoted strings. Good
// enough for the schema file; not a general SQL parser.
func splitSqlStatements(sqlText string) []string {
	var statements []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false

	for _, char := range sqlText {
		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
		}

		if char == ';' && !inSingleQuote && !inDoubleQuote {
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
			continue
		}
		current.WriteRune(char)
	}

	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}
