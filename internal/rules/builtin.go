package rules

import (
	"go.trai.ch/starter/internal/core/domain"
	"go.trai.ch/starter/internal/core/ports"
	"go.trai.ch/zerr"
)

// Built-in rule names.
const (
	SpringSecurityTestName = "spring-security-test"
	ReactorTestName        = "reactor-test"
	KafkaTestName          = "kafka-test"
)

// SpringSecurityTestSpec adds spring-security-test to projects using Spring Security on 1.3.0.RELEASE or later.
func SpringSecurityTestSpec() domain.RuleSpec {
	return domain.RuleSpec{
		Name:       SpringSecurityTestName,
		Triggers:   []string{"security", "security-reactive"},
		MinVersion: "1.3.0.RELEASE",
		Implies:    domain.MustDependency("security-test", "org.springframework.security", "spring-security-test", domain.ScopeTest),
	}
}

// ReactorTestSpec adds reactor-test to WebFlux projects on 2.0.0.M2 or later.
func ReactorTestSpec() domain.RuleSpec {
	return domain.RuleSpec{
		Name:       ReactorTestName,
		Triggers:   []string{"webflux"},
		MinVersion: "2.0.0.M2",
		Implies:    domain.MustDependency("reactor-test", "io.projectreactor", "reactor-test", domain.ScopeTest),
	}
}

// KafkaTestSpec adds spring-kafka-test to Kafka projects on 1.5.0.RELEASE or later.
func KafkaTestSpec() domain.RuleSpec {
	return domain.RuleSpec{
		Name:       KafkaTestName,
		Triggers:   []string{"kafka"},
		MinVersion: "1.5.0.RELEASE",
		Implies:    domain.MustDependency("kafka-test", "org.springframework.kafka", "spring-kafka-test", domain.ScopeTest),
	}
}

// NewSpringSecurityTest creates the spring-security-test rule.
func NewSpringSecurityTest(parser ports.VersionParser, logger ports.Logger) (*Implied, error) {
	return NewImplied(SpringSecurityTestSpec(), parser, logger)
}

// Defaults returns the built-in rules in application order.
func Defaults(parser ports.VersionParser, logger ports.Logger) ([]ports.RequestPostProcessor, error) {
	return build([]domain.RuleSpec{SpringSecurityTestSpec(), ReactorTestSpec(), KafkaTestSpec()}, parser, logger)
}

// FromMetadata returns the rules declared by the catalog in declaration order.
func FromMetadata(metadata *domain.Metadata, parser ports.VersionParser, logger ports.Logger) ([]ports.RequestPostProcessor, error) {
	if metadata == nil {
		return nil, nil
	}
	return build(metadata.Rules(), parser, logger)
}

// Compose returns the built-in rules followed by the catalog rules.
// A catalog rule reusing a built-in name is rejected.
func Compose(metadata *domain.Metadata, parser ports.VersionParser, logger ports.Logger) ([]ports.RequestPostProcessor, error) {
	defaults, err := Defaults(parser, logger)
	if err != nil {
		return nil, err
	}
	declared, err := FromMetadata(metadata, parser, logger)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(defaults)+len(declared))
	out := make([]ports.RequestPostProcessor, 0, len(defaults)+len(declared))
	for _, r := range append(defaults, declared...) {
		if _, dup := seen[r.Name()]; dup {
			return nil, zerr.With(domain.WithMeta(domain.ErrInvalidRule, "reason", "duplicate rule name"), "rule", r.Name())
		}
		seen[r.Name()] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}

func build(specs []domain.RuleSpec, parser ports.VersionParser, logger ports.Logger) ([]ports.RequestPostProcessor, error) {
	out := make([]ports.RequestPostProcessor, 0, len(specs))
	for _, spec := range specs {
		r, err := NewImplied(spec, parser, logger)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
