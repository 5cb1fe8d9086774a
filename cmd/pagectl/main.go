// Command pagectl boots the page-backed directory and runs its command
// shell, interactively, from a script, or on a terminal console.
package main

func main() {
	execute()
}
