// Command crontrigger fires the maintenance endpoints of the API on a schedule.
package main

func main() {
	Execute()
}
