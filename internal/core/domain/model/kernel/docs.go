// Package kernel contains shared value objects used across all domain
// aggregates. Currently this is the UUID identifier type; domain packages
// depend on kernel rather than on third-party identifier libraries directly.
package kernel
