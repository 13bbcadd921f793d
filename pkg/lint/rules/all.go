package rules

// Import all rule subpackages to register them with the global registry.
// This file triggers all init() functions in the rule packages.
import (
	// Import rule groups - each registers its rules via init()
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules/functions"
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules/metadata"
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules/ports"
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules/statements"
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules/structure"
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules/variables"
)
