package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildEventQueryEmpty(t *testing.T) {
	query := BuildEventQuery(EventFilter{})
	if len(query) != 0 {
		t.Errorf("empty filter should produce empty query, got %v", query)
	}
}

func TestBuildEventQueryCategoryOnly(t *testing.T) {
	query := BuildEventQuery(EventFilter{Category: "tech"})
	if query["category"] != "tech" {
		t.Errorf("category not matched exactly: %v", query)
	}
	if _, ok := query["$or"]; ok {
		t.Error("search clause present without a search term")
	}
}

func TestBuildEventQuerySearch(t *testing.T) {
	query := BuildEventQuery(EventFilter{Search: "robotics"})

	or, ok := query["$or"].(bson.A)
	if !ok || len(or) != 2 {
		t.Fatalf("expected two-branch $or, got %v", query["$or"])
	}

	title, ok := or[0].(bson.M)["title"].(primitive.Regex)
	if !ok {
		t.Fatalf("title branch is not a regex: %v", or[0])
	}
	if title.Options != "i" {
		t.Errorf("title match is case-sensitive: options %q", title.Options)
	}
	if title.Pattern != "robotics" {
		t.Errorf("unexpected pattern %q", title.Pattern)
	}

	if _, ok := or[1].(bson.M)["description"].(primitive.Regex); !ok {
		t.Errorf("description branch is not a regex: %v", or[1])
	}
}

func TestBuildEventQueryQuotesRegexInput(t *testing.T) {
	query := BuildEventQuery(EventFilter{Search: "c++ (lab)"})
	or := query["$or"].(bson.A)
	pattern := or[0].(bson.M)["title"].(primitive.Regex).Pattern
	if pattern == "c++ (lab)" {
		t.Error("search term not quoted; regex metacharacters leak through")
	}
}

func TestBuildEventQueryComposesBothFilters(t *testing.T) {
	query := BuildEventQuery(EventFilter{Category: "tech", Search: "robotics"})
	if query["category"] != "tech" {
		t.Errorf("category missing from combined query: %v", query)
	}
	if _, ok := query["$or"]; !ok {
		t.Errorf("search missing from combined query: %v", query)
	}
}
