package repository

import (
	"strings"
	"testing"
)

func TestBuildBilingualLikeConditionSQLite(t *testing.T) {
	condition, argCount := buildBilingualLikeCondition(nil, []string{"name_en", "name_ta"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if !strings.Contains(condition, "name_en LIKE ?") {
		t.Fatalf("condition should contain name_en LIKE, got %s", condition)
	}
	if !strings.Contains(condition, "name_ta LIKE ?") {
		t.Fatalf("condition should contain name_ta LIKE, got %s", condition)
	}
}

func TestBuildBilingualLikeConditionPostgres(t *testing.T) {
	condition, argCount := buildBilingualLikeConditionByDialect("postgres", []string{"name_en"})
	if argCount != 1 {
		t.Fatalf("arg count want 1 got %d", argCount)
	}
	if !strings.Contains(condition, "name_en ILIKE ?") {
		t.Fatalf("postgres should use ILIKE, got %s", condition)
	}
}

func TestBuildBilingualLikeConditionSkipsBlankColumns(t *testing.T) {
	condition, argCount := buildBilingualLikeConditionByDialect("sqlite", []string{" ", "name_en", ""})
	if argCount != 1 {
		t.Fatalf("arg count want 1 got %d", argCount)
	}
	if condition != "name_en LIKE ?" {
		t.Fatalf("condition want single clause got %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}
