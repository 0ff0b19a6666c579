// Package party sizes events made up of several groups with different
// appetites. Plans are read from YAML and each group is run through the
// pizza calculator; pizzas are shared across groups when totals are taken.
package party
