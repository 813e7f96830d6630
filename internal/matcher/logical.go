package matcher

// TrueMatcher matches every entry. It backs the -true flag and is the seed
// value for empty expressions.
type TrueMatcher struct{}

// Matches implements Matcher.
func (TrueMatcher) Matches(Entry) bool { return true }

// HasSideEffects implements Matcher.
func (TrueMatcher) HasSideEffects() bool { return false }

// FalseMatcher matches no entry. It backs the -false flag.
type FalseMatcher struct{}

// Matches implements Matcher.
func (FalseMatcher) Matches(Entry) bool { return false }

// HasSideEffects implements Matcher.
func (FalseMatcher) HasSideEffects() bool { return false }

// NotMatcher inverts the result of its submatcher. Side effects of the
// submatcher still fire, only the returned value is flipped.
type NotMatcher struct {
	submatcher Matcher
}

// NewNotMatcher creates a matcher inverting the given submatcher.
func NewNotMatcher(submatcher Matcher) *NotMatcher {
	return &NotMatcher{submatcher: submatcher}
}

// Matches implements Matcher.
func (m *NotMatcher) Matches(entry Entry) bool {
	return !m.submatcher.Matches(entry)
}

// HasSideEffects implements Matcher.
func (m *NotMatcher) HasSideEffects() bool {
	return m.submatcher.HasSideEffects()
}

// AndMatcher is the conjunction of its submatchers. Adjacent expressions on
// the command line combine into one AndMatcher, so it is the tightest-binding
// level of the tree.
type AndMatcher struct {
	submatchers []Matcher
}

// NewAndMatcher creates an empty conjunction.
func NewAndMatcher() *AndMatcher {
	return &AndMatcher{}
}

// Append adds a matcher as the next operand of the conjunction. Operands are
// evaluated in append order.
func (m *AndMatcher) Append(submatcher Matcher) {
	m.submatchers = append(m.submatchers, submatcher)
}

// IsEmpty reports whether no operand has been appended yet.
func (m *AndMatcher) IsEmpty() bool {
	return len(m.submatchers) == 0
}

// Matches implements Matcher. Evaluation short-circuits: operands after the
// first false one are not evaluated and their side effects do not fire.
func (m *AndMatcher) Matches(entry Entry) bool {
	for _, submatcher := range m.submatchers {
		if !submatcher.Matches(entry) {
			return false
		}
	}

	return true
}

// HasSideEffects implements Matcher.
func (m *AndMatcher) HasSideEffects() bool {
	for _, submatcher := range m.submatchers {
		if submatcher.HasSideEffects() {
			return true
		}
	}

	return false
}

// OrMatcher is the disjunction of its branches. Each branch is a conjunction,
// giving -o lower precedence than adjacency. A new OrMatcher starts with one
// empty branch that Append fills until OpenBranch starts the next one.
type OrMatcher struct {
	branches []*AndMatcher
}

// NewOrMatcher creates a disjunction with a single empty branch.
func NewOrMatcher() *OrMatcher {
	return &OrMatcher{branches: []*AndMatcher{NewAndMatcher()}}
}

// Append adds a matcher to the branch currently being built.
func (m *OrMatcher) Append(submatcher Matcher) {
	m.branches[len(m.branches)-1].Append(submatcher)
}

// OpenBranch finishes the current branch and starts the next one in response
// to the given operator token. It fails if the current branch is still empty,
// which means the operator had no left-hand operand.
func (m *OrMatcher) OpenBranch(operator string) error {
	if m.currentBranchIsEmpty() {
		return NewDanglingOperatorError(operator)
	}

	m.branches = append(m.branches, NewAndMatcher())

	return nil
}

func (m *OrMatcher) currentBranchIsEmpty() bool {
	return m.branches[len(m.branches)-1].IsEmpty()
}

// Matches implements Matcher. Evaluation short-circuits: branches after the
// first matching one are not evaluated and their side effects do not fire.
// An OrMatcher with only an empty branch matches everything, which is what
// makes an empty expression equivalent to -true.
func (m *OrMatcher) Matches(entry Entry) bool {
	for _, branch := range m.branches {
		if branch.Matches(entry) {
			return true
		}
	}

	return false
}

// HasSideEffects implements Matcher.
func (m *OrMatcher) HasSideEffects() bool {
	for _, branch := range m.branches {
		if branch.HasSideEffects() {
			return true
		}
	}

	return false
}

// ListMatcher is a sequence of statements separated by `,` tokens. Each
// statement is a disjunction, making the comma the loosest-binding operator.
// The builder keeps exactly one ListMatcher per parenthesis level.
type ListMatcher struct {
	statements []*OrMatcher
}

// NewListMatcher creates a sequence with a single empty statement.
func NewListMatcher() *ListMatcher {
	return &ListMatcher{statements: []*OrMatcher{NewOrMatcher()}}
}

// Append adds a matcher to the statement currently being built.
func (m *ListMatcher) Append(submatcher Matcher) {
	m.statements[len(m.statements)-1].Append(submatcher)
}

// OpenBranch starts a new disjunction branch inside the current statement in
// response to the given operator token.
func (m *ListMatcher) OpenBranch(operator string) error {
	return m.statements[len(m.statements)-1].OpenBranch(operator)
}

// OpenStatement finishes the current statement and starts the next one. It
// fails if the current statement has an empty open branch, which means the
// comma had no left-hand operand.
func (m *ListMatcher) OpenStatement() error {
	if m.statements[len(m.statements)-1].currentBranchIsEmpty() {
		return NewDanglingOperatorError(",")
	}

	m.statements = append(m.statements, NewOrMatcher())

	return nil
}

// Matches implements Matcher. Unlike conjunctions and disjunctions, a
// sequence never short-circuits: every statement is evaluated so that its
// side effects fire, and the result of the last statement is the result of
// the sequence.
func (m *ListMatcher) Matches(entry Entry) bool {
	result := false
	for _, statement := range m.statements {
		result = statement.Matches(entry)
	}

	return result
}

// HasSideEffects implements Matcher.
func (m *ListMatcher) HasSideEffects() bool {
	for _, statement := range m.statements {
		if statement.HasSideEffects() {
			return true
		}
	}

	return false
}
