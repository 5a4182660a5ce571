// Groundcover is a rules engine for construction-site erosion and
// sediment control planning.
//
// It evaluates a declarative rule set against a project description and
// produces the required practices, pay items, and cost estimate:
//
//	# Process a project with the built-in catalogue
//	groundcover process --input project.yaml
//
//	# Layer county rules over the defaults and write a markdown report
//	groundcover process --input project.yaml --rules county.yaml --format markdown
//
//	# Validate a custom rule file
//	groundcover rules validate --file county.yaml
//
//	# List the effective rule set
//	groundcover rules list --rules county.yaml
//
//	# Inspect past evaluations
//	groundcover history list
package main

func main() {
	Execute()
}
