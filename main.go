package main

import "github.com/arkanhealth/jadwal_backend/cmd"

func main() {
	cmd.Execute()
}
