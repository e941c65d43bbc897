package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/bank"
	"carbon-quiz-service/internal/config"
	"carbon-quiz-service/internal/domain"
	"carbon-quiz-service/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dbPath string) string {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "SQLITE_DB_PATH"} {
		t.Setenv(key, "")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sqlite:\n  path: "+dbPath+"\n"), 0o600))
	return path
}

func TestExportFromSQLite(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "quiz.db")
	cfgPath := writeConfig(t, dbPath)

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	store, closeStore, err := openSubmissionStore(ctx, cfg)
	require.NoError(t, err)

	b := bank.Default()
	answers := make([]domain.Answer, 0, len(b.Questions))
	for _, q := range b.Questions {
		answers = append(answers, domain.Answer{QuestionID: q.ID, Score: 4})
	}
	_, err = app.NewSubmissionService(scoring.NewEngine(b), store).Submit(ctx, domain.UserInfo{Email: "a@x.com"}, answers)
	require.NoError(t, err)
	closeStore()

	var stdout bytes.Buffer
	require.NoError(t, runExport(ctx, cfgPath, false, "", &stdout))
	lines := strings.Split(stdout.String(), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `"a@x.com"`))
	assert.Contains(t, lines[1], `"Achiever"`)

	outFile := filepath.Join(t.TempDir(), "full.csv")
	require.NoError(t, runExport(ctx, cfgPath, true, outFile, &stdout))
	raw, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "answers_json")
}

func TestMigrateRequiresPostgres(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	err := runMigrationsWithConfig(context.Background(), config.Config{})
	assert.Error(t, err)
}
