package main

import (
	"rostersite/cmd/rostersite/commands"
	"rostersite/lib/serviceutil"
	"rostersite/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	if err := telemetry.SetupFromEnv(ctx, "rostersite"); err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	telemetry.InitSlog(true)
	commands.ExecuteContext(ctx)
}
