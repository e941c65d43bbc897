package app_test

import (
	"context"
	"testing"

	"carbon-quiz-service/internal/app"
	"carbon-quiz-service/internal/domain"
	"carbon-quiz-service/internal/infra/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runFixture struct {
	runs     *app.RunService
	progress *memory.ProgressStore
	store    *flakyStore
}

func newRunFixture() runFixture {
	engine := newEngine()
	store := &flakyStore{SubmissionStore: memory.NewSubmissionStore()}
	progress := memory.NewProgressStore(0)
	subs := app.NewSubmissionServiceWithClock(engine, store, clock)
	return runFixture{
		runs:     app.NewRunServiceWithClock(engine, progress, subs, clock),
		progress: progress,
		store:    store,
	}
}

func TestStartRequiresEmail(t *testing.T) {
	f := newRunFixture()
	_, err := f.runs.Start(context.Background(), domain.UserInfo{Name: "Ann"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRunReportsSectionCompletion(t *testing.T) {
	ctx := context.Background()
	f := newRunFixture()
	p, err := f.runs.Start(ctx, domain.UserInfo{Email: "a@x.com"})
	require.NoError(t, err)
	assert.True(t, app.ValidRunID(p.ID))

	first, ok := f.runs.Current(p)
	require.True(t, ok)
	assert.Equal(t, 1, first.ID)

	// the first section has seven questions
	for i := 0; i < 6; i++ {
		out, err := f.runs.Answer(ctx, p.ID, 5)
		require.NoError(t, err)
		assert.Nil(t, out.Completed)
		assert.Equal(t, i+1, out.Progress.CurrentIndex)
	}
	out, err := f.runs.Answer(ctx, p.ID, 5)
	require.NoError(t, err)
	require.NotNil(t, out.Completed)
	assert.Equal(t, "energy-emissions", out.Completed.SectionID)
	assert.Equal(t, 100.0, out.Completed.Percentage)
	assert.Contains(t, out.Completed.Message, "Energy & Emissions")
	require.NotNil(t, out.Next)
	assert.Equal(t, "water-treatment", out.Next.SectionID)
}

func TestRunResumeAndReject(t *testing.T) {
	ctx := context.Background()
	f := newRunFixture()
	p, _ := f.runs.Start(ctx, domain.UserInfo{Email: "a@x.com"})

	_, err := f.runs.Answer(ctx, p.ID, 3)
	require.NoError(t, err)

	_, err = f.runs.Answer(ctx, p.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resumed, err := f.runs.Resume(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, resumed.CurrentIndex)
	require.Len(t, resumed.Answers, 1)
	assert.Equal(t, 3, resumed.Answers[0].Score)

	_, err = f.runs.Finish(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.runs.Resume(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProgressNotFound)
}

func TestRunDiscardsIncompatibleProgress(t *testing.T) {
	ctx := context.Background()
	f := newRunFixture()

	require.NoError(t, f.progress.Save(ctx, domain.Progress{Version: domain.ProgressVersion + 1, ID: "old"}))
	_, err := f.runs.Resume(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrProgressNotFound)

	require.NoError(t, f.progress.Save(ctx, domain.Progress{Version: domain.ProgressVersion, ID: "skewed", CurrentIndex: 3}))
	_, err = f.runs.Resume(ctx, "skewed")
	assert.ErrorIs(t, err, domain.ErrProgressNotFound)

	_, err = f.progress.Load(ctx, "skewed")
	assert.ErrorIs(t, err, domain.ErrProgressNotFound, "inconsistent progress is cleared")
}

func TestRunCompletesAndClearsProgress(t *testing.T) {
	ctx := context.Background()
	f := newRunFixture()
	p, _ := f.runs.Start(ctx, domain.UserInfo{Email: "a@x.com"})

	var last app.AnswerOutcome
	for i := 0; i < f.runs.TotalQuestions(); i++ {
		var err error
		last, err = f.runs.Answer(ctx, p.ID, 4)
		require.NoError(t, err)
	}
	require.NotNil(t, last.Submission)
	assert.Nil(t, last.Next)
	assert.Nil(t, last.Completed, "the final section is reported through the result")
	assert.Equal(t, 180, last.Submission.Result.TotalScore)
	assert.Equal(t, "Achiever", last.Submission.Result.Tier.Name)

	_, err := f.runs.Resume(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrProgressNotFound)
}

func TestRunKeepsProgressWhenSubmitFails(t *testing.T) {
	ctx := context.Background()
	f := newRunFixture()
	p, _ := f.runs.Start(ctx, domain.UserInfo{Email: "a@x.com"})

	for i := 0; i < f.runs.TotalQuestions()-1; i++ {
		_, err := f.runs.Answer(ctx, p.ID, 2)
		require.NoError(t, err)
	}
	f.store.failing = true
	_, err := f.runs.Answer(ctx, p.ID, 2)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)

	saved, err := f.runs.Resume(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, f.runs.TotalQuestions(), saved.CurrentIndex)

	f.store.failing = false
	out, err := f.runs.Finish(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, out.Submission)
	assert.Equal(t, int64(1), out.Submission.ID)
}

func TestRunDiscard(t *testing.T) {
	ctx := context.Background()
	f := newRunFixture()
	p, _ := f.runs.Start(ctx, domain.UserInfo{Email: "a@x.com"})

	require.NoError(t, f.runs.Discard(ctx, p.ID))
	_, err := f.runs.Resume(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrProgressNotFound)
}
