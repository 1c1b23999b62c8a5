package blastgraph

import (
	"reflect"
	"testing"
)

func Test_Graph_RecordSelfScore(t *testing.T) {
	g := NewGraph()

	g.RecordSelfScore("Eco|b0001", "Eco", 100)
	g.RecordSelfScore("Eco|b0001", "Eco", 90)
	g.RecordSelfScore("Eco|b0001", "Eco", 120)

	got, ok := g.SelfScore("Eco|b0001")
	if !ok || got != 120 {
		t.Errorf("SelfScore() = %v, %v, want 120, true", got, ok)
	}
	if _, ok := g.SelfScore("Eco|b0002"); ok {
		t.Error("SelfScore() = true for an unknown sequence")
	}
	if g.NumNodes() != 1 {
		t.Errorf("NumNodes() = %d, want 1", g.NumNodes())
	}
}

func Test_Graph_Edge_unordered(t *testing.T) {
	g := NewGraph()
	g.PutEdge(&MetricEdge{
		Query:   "b",
		Subject: "a",
		Weights: map[string]Weight{MetricBitScore: {Value: 10}},
	})

	e, ok := g.Edge("a", "b")
	if !ok {
		t.Fatal("Edge(a, b) not found for an edge stored as (b, a)")
	}
	if e.Query != "b" || e.Subject != "a" {
		t.Errorf("edge orientation = %s, %s, want b, a", e.Query, e.Subject)
	}
	if g.NumEdges() != 1 {
		t.Errorf("NumEdges() = %d, want 1", g.NumEdges())
	}
}

func Test_Graph_Edges_sorted(t *testing.T) {
	g := NewGraph()
	for _, ids := range [][2]string{{"c", "d"}, {"a", "z"}, {"a", "b"}, {"b", "c"}} {
		g.PutEdge(&MetricEdge{Query: ids[0], Subject: ids[1], Weights: map[string]Weight{}})
	}

	var got [][2]string
	for _, e := range g.Edges() {
		got = append(got, [2]string{e.Query, e.Subject})
	}

	want := [][2]string{{"a", "b"}, {"a", "z"}, {"b", "c"}, {"c", "d"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Edges() order = %v, want %v", got, want)
	}
}

func Test_MetricEdge_pending(t *testing.T) {
	e := &MetricEdge{
		Query:   "a",
		Subject: "b",
		Weights: map[string]Weight{MetricEValue: {Value: EValueSaturation}},
	}

	if v, ok := e.Value(MetricEValue); !ok || v != EValueSaturation {
		t.Errorf("Value() = %v, %v before marking, want %v, true", v, ok, EValueSaturation)
	}

	e.MarkPending(MetricEValue)
	if _, ok := e.Value(MetricEValue); ok {
		t.Error("Value() = ok for a pending metric")
	}
	if !e.IsPending(MetricEValue) {
		t.Error("IsPending() = false after MarkPending")
	}

	e.Set(MetricEValue, 42)
	if v, ok := e.Value(MetricEValue); !ok || v != 42 {
		t.Errorf("Value() = %v, %v after Set, want 42, true", v, ok)
	}
	if e.IsPending(MetricEValue) {
		t.Error("IsPending() = true after Set")
	}

	if _, ok := e.Value(MetricBitScoreRatio); ok {
		t.Error("Value() = ok for an absent metric")
	}
}

func Test_OrgTag(t *testing.T) {
	type args struct {
		id     string
		idChar string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"tagged", args{"Eco|b0001", "|"}, "Eco"},
		{"no delimiter", args{"b0001", "|"}, "b0001"},
		{"first delimiter wins", args{"Eco|b0001|2", "|"}, "Eco"},
		{"custom delimiter", args{"Eco_b0001", "_"}, "Eco"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrgTag(tt.args.id, tt.args.idChar); got != tt.want {
				t.Errorf("OrgTag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_PairOf(t *testing.T) {
	if PairOf("b", "a") != PairOf("a", "b") {
		t.Error("PairOf() is not symmetric")
	}
	if p := PairOf("b", "a"); p.A != "a" || p.B != "b" {
		t.Errorf("PairOf(b, a) = %v, want {a b}", p)
	}
}
