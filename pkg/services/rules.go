package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"

	"github.com/fleetdesk/fleet-api/pkg/models"
)

// GroupRule is a parsed dynamic group rule expression, a predicate over
// device attributes. Rules are parsed once per resolution and evaluated
// against every device in the registry.
type GroupRule interface {
	Matches(device *models.Device) bool
}

// ParseGroupRule parses a rule expression such as
//
//	os = 'Windows' AND os_version >= '10'
//
// Identifiers: name, os, os_version, ip, last_user, rustdesk_id.
// Operators: = != > >= < <= contains, combined with AND/OR and parentheses.
// Values are single-quoted strings. Ordering comparisons on os_version are
// semantic-version aware with a plain string fallback.
func ParseGroupRule(expr string) (GroupRule, error) {
	tokens, err := tokenizeRule(expr)
	if err != nil {
		return nil, err
	}
	parser := &ruleParser{tokens: tokens}
	rule, err := parser.parseOr()
	if err != nil {
		return nil, err
	}
	if !parser.done() {
		return nil, fmt.Errorf("unexpected token %q", parser.peek().text)
	}
	return rule, nil
}

type ruleTokenKind int

const (
	tokenIdent ruleTokenKind = iota
	tokenValue
	tokenOperator
	tokenAnd
	tokenOr
	tokenLeftParen
	tokenRightParen
)

type ruleToken struct {
	kind ruleTokenKind
	text string
}

func tokenizeRule(expr string) ([]ruleToken, error) {
	var tokens []ruleToken
	runes := []rune(expr)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '(':
			tokens = append(tokens, ruleToken{kind: tokenLeftParen, text: "("})
			i++
		case c == ')':
			tokens = append(tokens, ruleToken{kind: tokenRightParen, text: ")"})
			i++
		case c == '\'':
			i++
			start := i
			for i < len(runes) && runes[i] != '\'' {
				i++
			}
			if i >= len(runes) {
				return nil, fmt.Errorf("unterminated string value")
			}
			tokens = append(tokens, ruleToken{kind: tokenValue, text: string(runes[start:i])})
			i++
		case c == '=' || c == '!' || c == '<' || c == '>':
			start := i
			i++
			if i < len(runes) && runes[i] == '=' {
				i++
			}
			op := string(runes[start:i])
			if op == "!" {
				return nil, fmt.Errorf("invalid operator %q", op)
			}
			tokens = append(tokens, ruleToken{kind: tokenOperator, text: op})
		case unicode.IsLetter(c) || c == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			word := string(runes[start:i])
			switch strings.ToUpper(word) {
			case "AND":
				tokens = append(tokens, ruleToken{kind: tokenAnd, text: word})
			case "OR":
				tokens = append(tokens, ruleToken{kind: tokenOr, text: word})
			case "CONTAINS":
				tokens = append(tokens, ruleToken{kind: tokenOperator, text: "contains"})
			default:
				tokens = append(tokens, ruleToken{kind: tokenIdent, text: word})
			}
		default:
			return nil, fmt.Errorf("unexpected character %q", string(c))
		}
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty rule expression")
	}
	return tokens, nil
}

type ruleParser struct {
	tokens []ruleToken
	pos    int
}

func (p *ruleParser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *ruleParser) peek() ruleToken {
	return p.tokens[p.pos]
}

func (p *ruleParser) next() ruleToken {
	token := p.tokens[p.pos]
	p.pos++
	return token
}

func (p *ruleParser) parseOr() (GroupRule, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for !p.done() && p.peek().kind == tokenOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &orRule{left: left, right: right}
	}
	return left, nil
}

func (p *ruleParser) parseAnd() (GroupRule, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for !p.done() && p.peek().kind == tokenAnd {
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &andRule{left: left, right: right}
	}
	return left, nil
}

func (p *ruleParser) parseTerm() (GroupRule, error) {
	if p.done() {
		return nil, fmt.Errorf("unexpected end of rule expression")
	}
	if p.peek().kind == tokenLeftParen {
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.done() || p.peek().kind != tokenRightParen {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.next()
		return inner, nil
	}
	return p.parseComparison()
}

func (p *ruleParser) parseComparison() (GroupRule, error) {
	ident := p.next()
	if ident.kind != tokenIdent {
		return nil, fmt.Errorf("expected attribute name, got %q", ident.text)
	}
	field, err := ruleField(ident.text)
	if err != nil {
		return nil, err
	}
	if p.done() {
		return nil, fmt.Errorf("expected operator after %q", ident.text)
	}
	op := p.next()
	if op.kind != tokenOperator {
		return nil, fmt.Errorf("expected operator, got %q", op.text)
	}
	if p.done() {
		return nil, fmt.Errorf("expected value after operator %q", op.text)
	}
	value := p.next()
	if value.kind != tokenValue {
		return nil, fmt.Errorf("expected quoted value, got %q", value.text)
	}
	return &comparisonRule{field: field, operator: op.text, value: value.text}, nil
}

type deviceField func(device *models.Device) string

func ruleField(name string) (deviceField, error) {
	// accept both snake_case and camelCase spellings
	switch strings.ReplaceAll(strings.ToLower(name), "_", "") {
	case "name":
		return func(d *models.Device) string { return d.Name }, nil
	case "os":
		return func(d *models.Device) string { return d.OS }, nil
	case "osversion":
		return func(d *models.Device) string { return d.OSVersion }, nil
	case "ip", "ipaddress":
		return func(d *models.Device) string { return d.IPAddress }, nil
	case "lastuser":
		return func(d *models.Device) string { return d.LastUser }, nil
	case "rustdeskid":
		return func(d *models.Device) string { return d.RustDeskID }, nil
	}
	return nil, fmt.Errorf("unknown attribute %q", name)
}

type andRule struct {
	left, right GroupRule
}

func (r *andRule) Matches(device *models.Device) bool {
	return r.left.Matches(device) && r.right.Matches(device)
}

type orRule struct {
	left, right GroupRule
}

func (r *orRule) Matches(device *models.Device) bool {
	return r.left.Matches(device) || r.right.Matches(device)
}

type comparisonRule struct {
	field    deviceField
	operator string
	value    string
}

func (r *comparisonRule) Matches(device *models.Device) bool {
	actual := r.field(device)
	switch r.operator {
	case "=":
		return strings.EqualFold(actual, r.value)
	case "!=":
		return !strings.EqualFold(actual, r.value)
	case "contains":
		return strings.Contains(strings.ToLower(actual), strings.ToLower(r.value))
	case ">", ">=", "<", "<=":
		cmp := compareVersionish(actual, r.value)
		switch r.operator {
		case ">":
			return cmp > 0
		case ">=":
			return cmp >= 0
		case "<":
			return cmp < 0
		default:
			return cmp <= 0
		}
	}
	return false
}

// compareVersionish compares two values as semantic versions when both
// parse (coerced, so "10" works), falling back to a string comparison
func compareVersionish(a, b string) int {
	av, aerr := semver.NewVersion(a)
	bv, berr := semver.NewVersion(b)
	if aerr == nil && berr == nil {
		return av.Compare(bv)
	}
	return strings.Compare(a, b)
}
