package ast

import (
	"testing"
)

func sampleIf() *Node {
	// if (x < 1) a = 2; else {}
	cond := NewNode(LES, NewIdent(VAR, "x"), NewInt(1))
	asgn := NewNode(VARASGN, NewIdent(VAR, "a"), NewInt(2))
	return NewNode(IF,
		NewNode(COND, cond),
		NewNode(BRANCH, asgn),
		NewNode(BRANCH),
	)
}

func TestChildByTag(t *testing.T) {
	n := sampleIf()

	cond, err := n.Child(COND, 0)
	if err != nil {
		t.Fatalf("Child(COND, 0): %v", err)
	}
	if cond.Tag != COND {
		t.Errorf("want COND, got %s", cond.Tag)
	}

	thenBranch, err := n.Child(BRANCH, 0)
	if err != nil {
		t.Fatalf("Child(BRANCH, 0): %v", err)
	}
	if len(thenBranch.Children) != 1 {
		t.Errorf("then branch: want 1 child, got %d", len(thenBranch.Children))
	}

	elseBranch, err := n.Child(BRANCH, 1)
	if err != nil {
		t.Fatalf("Child(BRANCH, 1): %v", err)
	}
	if len(elseBranch.Children) != 0 {
		t.Errorf("else branch: want empty, got %d children", len(elseBranch.Children))
	}
}

func TestChildErrors(t *testing.T) {
	n := sampleIf()

	_, err := n.Child(FARGS, 0)
	if err == nil {
		t.Fatal("expected an error for a missing tag")
	}
	childErr, ok := err.(*ChildError)
	if !ok {
		t.Fatalf("want *ChildError, got %T", err)
	}
	if childErr.Have != 0 {
		t.Errorf("want Have=0, got %d", childErr.Have)
	}
	if got, want := err.Error(), "IF node has no FARGS child"; got != want {
		t.Errorf("error message: want %q, got %q", want, got)
	}

	_, err = n.Child(BRANCH, 2)
	if err == nil {
		t.Fatal("expected an error for an out-of-range index")
	}
	if got, want := err.Error(), "IF node has 2 BRANCH children, index 2 out of range"; got != want {
		t.Errorf("error message: want %q, got %q", want, got)
	}
}

func TestCountChildren(t *testing.T) {
	n := sampleIf()
	if got := n.CountChildren(BRANCH); got != 2 {
		t.Errorf("CountChildren(BRANCH): want 2, got %d", got)
	}
	if got := n.CountChildren(WHILE); got != 0 {
		t.Errorf("CountChildren(WHILE): want 0, got %d", got)
	}
}

func TestLeafScalars(t *testing.T) {
	tests := []struct {
		node *Node
		want string
	}{
		{NewIdent(FNAME, "main"), "main"},
		{NewInt(42), "42"},
		{NewFloat(0.5), "0.5"},
		{NewFloat(7), "7.0"},
		{NewFloat(10.7), "10.7"},
	}
	for _, tt := range tests {
		if got := tt.node.Scalar(); got != tt.want {
			t.Errorf("Scalar(): want %q, got %q", tt.want, got)
		}
		if !tt.node.IsLeaf() {
			t.Errorf("%s should be a leaf", tt.node.Tag)
		}
	}

	if NewNode(FARGS).IsLeaf() {
		t.Error("an internal node with no children is not a leaf")
	}
}

func TestRenderText(t *testing.T) {
	prog := NewNode(PROG,
		NewNode(FDEF,
			NewIdent(FNAME, "main"),
			NewNode(FARGS, NewIdent(FARG, "a")),
			NewNode(FBODY,
				NewNode(RETURN, NewInt(0)),
			),
		),
	)

	want := `PROG
  FDEF
    FNAME[main]
    FARGS
      FARG[a]
    FBODY
      RETURN
        INT[0]`

	if got := prog.String(); got != want {
		t.Errorf("render mismatch:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestDumpJSON(t *testing.T) {
	tree := NewNode(FDEF,
		NewIdent(FNAME, "main"),
		NewNode(FARGS),
	)

	want := `{
  "name": "FDEF",
  "children": [
    {
      "name": "FNAME[main]"
    },
    {
      "name": "FARGS"
    }
  ]
}`

	got, err := Dump(tree, FormatJSON)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if got != want {
		t.Errorf("json dump mismatch:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestDumpUnknownFormat(t *testing.T) {
	if _, err := Dump(NewNode(PROG), "xml"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}
