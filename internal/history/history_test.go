package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/liftloop/coach/internal/ai"
)

func TestTurnJSONPair(t *testing.T) {
	turn := Human("I want to build muscle")
	data, err := json.Marshal(turn)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["human","I want to build muscle"]` {
		t.Fatalf("unexpected encoding: %s", data)
	}

	var back Turn
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != turn {
		t.Fatalf("round trip changed turn: %+v", back)
	}
}

func TestTurnUnmarshalRejectsNonPair(t *testing.T) {
	var turn Turn
	if err := json.Unmarshal([]byte(`{"role":"human"}`), &turn); err == nil {
		t.Fatal("expected error for object-shaped turn")
	}
}

func TestTruncateKeepsMostRecent(t *testing.T) {
	var turns []Turn
	for i := 0; i < 60; i++ {
		turns = append(turns, Human(fmt.Sprintf("msg %d", i)))
	}

	got := Truncate(turns, MaxTurns)
	if len(got) != MaxTurns {
		t.Fatalf("len = %d, want %d", len(got), MaxTurns)
	}
	if got[0].Text != "msg 10" {
		t.Errorf("oldest kept = %q, want %q", got[0].Text, "msg 10")
	}
	if got[len(got)-1].Text != "msg 59" {
		t.Errorf("newest kept = %q, want %q", got[len(got)-1].Text, "msg 59")
	}
}

func TestTruncateUnderLimit(t *testing.T) {
	turns := []Turn{Human("a"), Assistant("b")}
	if got := Truncate(turns, MaxTurns); len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestPrepareFitsWithoutSummary(t *testing.T) {
	turns := []Turn{
		Human("hello coach"),
		Assistant("hello lifter"),
	}
	msgs := Prepare(turns, 20)
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}
	if msgs[0].Role != ai.RoleUser || msgs[1].Role != ai.RoleAssistant {
		t.Fatalf("role mapping wrong: %s, %s", msgs[0].Role, msgs[1].Role)
	}
}

func TestPrepareSummarizesOverflow(t *testing.T) {
	var turns []Turn
	for i := 0; i < 25; i++ {
		turns = append(turns, Human(fmt.Sprintf("msg %d", i)))
	}

	msgs := Prepare(turns, 20)
	if len(msgs) != 21 {
		t.Fatalf("len = %d, want 21 (summary + 20 turns)", len(msgs))
	}
	if msgs[0].Role != ai.RoleAssistant {
		t.Errorf("summary role = %s, want assistant", msgs[0].Role)
	}
	if !strings.Contains(msgs[0].Content, "5") {
		t.Errorf("summary should state the omitted count, got %q", msgs[0].Content)
	}
	if msgs[1].Content != "msg 5" {
		t.Errorf("first retained turn = %q, want %q", msgs[1].Content, "msg 5")
	}
	if msgs[20].Content != "msg 24" {
		t.Errorf("last retained turn = %q, want %q", msgs[20].Content, "msg 24")
	}
}

func TestPrepareZeroLimitMapsEverything(t *testing.T) {
	turns := []Turn{Human("a"), Assistant("b"), Human("c")}
	if got := Prepare(turns, 0); len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}
