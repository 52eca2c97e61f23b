// Package mock provides test doubles for the ai interfaces.
//
// The mocks are deterministic by default and configurable per test via
// behavior-injection fields (CaptionFunc, SummarizeFunc, EmbedFunc) and
// a Disabled flag. They record call counts and inputs so tests can
// assert on request deduplication and skip behavior. All mocks are safe
// for concurrent use.
package mock
