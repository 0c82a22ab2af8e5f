// Command axctl inspects and converts accessibility tree updates: YAML tree
// descriptions, .axt snapshot files and the property registry.
package main

func main() {
	execute()
}
