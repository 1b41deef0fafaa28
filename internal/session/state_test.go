// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestHistoryCopySemantics(t *testing.T) {
	s := NewState()
	s.AppendTurn(UserTurn("hello", ""))
	s.AppendTurn(ModelTurn("hi there", ""))

	h := s.History()
	if len(h) != 2 {
		t.Fatalf("History() length = %d, want 2", len(h))
	}

	// Mutating the returned slice must not affect internal state.
	h[0].Role = "corrupted"
	if got := s.History()[0].Role; got != RoleUser {
		t.Errorf("internal history mutated through copy: role = %q", got)
	}
}

func TestTurnWireShape(t *testing.T) {
	turn := UserTurn("what is this", "data:image/png;base64,AAAA")
	b, err := json.Marshal(turn)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"role":"user","parts":[{"text":"what is this"},{"image":"data:image/png;base64,AAAA"}]}`
	if string(b) != want {
		t.Errorf("marshaled turn = %s, want %s", b, want)
	}

	// Text-only turns must not emit an empty image field.
	b, err = json.Marshal(ModelTurn("answer", ""))
	if err != nil {
		t.Fatal(err)
	}
	want = `{"role":"model","parts":[{"text":"answer"}]}`
	if string(b) != want {
		t.Errorf("marshaled turn = %s, want %s", b, want)
	}
}

func TestTruncateHistory(t *testing.T) {
	s := NewState()
	for i := 0; i < 30; i++ {
		s.AppendTurn(UserTurn("msg", ""))
	}
	s.TruncateHistory(20)
	if got := s.TurnCount(); got != 20 {
		t.Errorf("TurnCount after truncate = %d, want 20", got)
	}

	// Truncating below the cap is a no-op.
	s.TruncateHistory(25)
	if got := s.TurnCount(); got != 20 {
		t.Errorf("TurnCount after no-op truncate = %d, want 20", got)
	}
}

func TestModelSelection(t *testing.T) {
	s := NewState()
	if got := s.Model(); got != DefaultModel {
		t.Errorf("initial model = %q, want %q", got, DefaultModel)
	}

	s.SetModel("gemini-2.5-pro")
	if got := s.Model(); got != "gemini-2.5-pro" {
		t.Errorf("model = %q, want gemini-2.5-pro", got)
	}

	// Unknown names fall back to the default instead of sticking.
	s.SetModel("gpt-9000")
	if got := s.Model(); got != DefaultModel {
		t.Errorf("model after unknown name = %q, want %q", got, DefaultModel)
	}
}

func TestModelCatalog(t *testing.T) {
	want := []string{
		"gemini-2.0-flash",
		"gemini-2.5-flash",
		"gemini-2.5-flash-lite",
		"gemini-2.5-pro",
		"gemini-1.5-flash",
		"gemini-1.5-flash-8b",
	}
	if !reflect.DeepEqual(Models, want) {
		t.Errorf("Models = %v, want %v", Models, want)
	}
	for _, m := range want {
		if !IsKnownModel(m) {
			t.Errorf("IsKnownModel(%q) = false", m)
		}
	}
}

func TestNextModelWraps(t *testing.T) {
	last := Models[len(Models)-1]
	if got := NextModel(last); got != Models[0] {
		t.Errorf("NextModel(%q) = %q, want %q", last, got, Models[0])
	}
	if got := NextModel("unknown"); got != Models[0] {
		t.Errorf("NextModel(unknown) = %q, want %q", got, Models[0])
	}
}

func TestPendingUploadLifecycle(t *testing.T) {
	s := NewState()
	if s.PendingUpload() != nil {
		t.Fatal("fresh state has a pending upload")
	}

	id := s.MarkPendingUpload("data:image/png;base64,BBBB")
	if id == "" {
		t.Fatal("MarkPendingUpload returned empty id")
	}
	up := s.PendingUpload()
	if up == nil || up.ID != id {
		t.Fatalf("PendingUpload = %+v, want id %q", up, id)
	}

	s.ClearPendingUpload()
	if s.PendingUpload() != nil {
		t.Error("pending upload survives ClearPendingUpload")
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewState()
	s.SetModel("gemini-2.5-pro")
	s.AppendTurn(UserTurn("hello", ""))
	s.SetLastGenerated("data:image/png;base64,CCCC", "a cat")
	s.MarkPendingUpload("data:image/png;base64,DDDD")

	s.Reset()

	if s.TurnCount() != 0 {
		t.Error("history survives Reset")
	}
	if s.LastGenerated() != nil {
		t.Error("last generated image survives Reset")
	}
	if s.PendingUpload() != nil {
		t.Error("pending upload survives Reset")
	}
	if got := s.Model(); got != DefaultModel {
		t.Errorf("model after Reset = %q, want %q", got, DefaultModel)
	}
}
