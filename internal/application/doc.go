// Package application provides application initialization and dependency wiring.
// It connects configuration, logging, the pizza calculator and party plans
// to an output stream, keeping the main package focused on CLI parsing.
package application
