package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lshigami/okataduke/config"
	"github.com/lshigami/okataduke/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const miniBank = `
title: mini
categories:
  - { tag: family, label: F, advice_url: https://f.example }
  - { tag: freeze, label: Z, advice_url: https://z.example }
  - { tag: emotion, label: E, advice_url: https://e.example }
  - { tag: burnout, label: B, advice_url: https://b.example }
questions:
  - position: 1
    prompt: first
    options:
      - { label: a, category: freeze }
      - { label: b, category: emotion }
      - { label: c, category: burnout }
      - { label: d, category: family }
`

func TestEmbeddedBank(t *testing.T) {
	repo, err := NewQuestionBankRepository(&config.Config{})
	require.NoError(t, err)

	assert.Equal(t, 10, repo.Size())
	assert.NotEmpty(t, repo.Bank().Title)

	for pos := 1; pos <= 10; pos++ {
		q, ok := repo.Question(pos)
		require.True(t, ok, "position %d", pos)
		require.Len(t, q.Options, OptionsPerQuestion)
		assert.Equal(t, model.Freeze, q.Options[0].Category, "first option of question %d", pos)
	}
	_, ok := repo.Question(11)
	assert.False(t, ok)

	urls := map[string]bool{}
	for _, c := range model.Categories() {
		info, ok := repo.Category(c)
		require.True(t, ok, c.String())
		assert.NotEmpty(t, info.Label)
		assert.NotEmpty(t, info.AdviceURL)
		urls[info.AdviceURL] = true
	}
	assert.Len(t, urls, model.NumCategories)

	info, _ := repo.Category(model.Family)
	assert.Equal(t, "振り回されタイプ", info.Label)
}

func TestNewQuestionBankRepositoryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(miniBank), 0o600))

	repo, err := NewQuestionBankRepository(&config.Config{Quiz: config.Quiz{BankPath: path}})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Size())
	assert.Equal(t, "mini", repo.Bank().Title)

	_, err = NewQuestionBankRepository(&config.Config{Quiz: config.Quiz{BankPath: filepath.Join(t.TempDir(), "missing.yaml")}})
	assert.Error(t, err)
}

func TestParseQuestionBankRejectsDefects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "unknown category tag",
			mutate:  func(s string) string { return strings.Replace(s, "{ label: d, category: family }", "{ label: d, category: hoarder }", 1) },
			wantErr: "unknown category tag",
		},
		{
			name:    "missing option category",
			mutate:  func(s string) string { return strings.Replace(s, "{ label: d, category: family }", "{ label: d }", 1) },
			wantErr: "invalid category",
		},
		{
			name:    "duplicate label",
			mutate:  func(s string) string { return strings.Replace(s, "{ label: b,", "{ label: a,", 1) },
			wantErr: "duplicate option label",
		},
		{
			name:    "wrong option count",
			mutate:  func(s string) string { return strings.Replace(s, "      - { label: d, category: family }\n", "", 1) },
			wantErr: "expected 4 options",
		},
		{
			name:    "missing category entry",
			mutate:  func(s string) string { return strings.Replace(s, "  - { tag: family, label: F, advice_url: https://f.example }\n", "", 1) },
			wantErr: "missing entry for family",
		},
		{
			name:    "empty advice url",
			mutate:  func(s string) string { return strings.Replace(s, "advice_url: https://z.example", "advice_url: \"\"", 1) },
			wantErr: "freeze has no advice_url",
		},
		{
			name:    "non-contiguous position",
			mutate:  func(s string) string { return strings.Replace(s, "position: 1", "position: 2", 1) },
			wantErr: "position must be 1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, err := ParseQuestionBank([]byte(tc.mutate(miniBank)))
			require.Error(t, err)
			assert.Nil(t, repo)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
