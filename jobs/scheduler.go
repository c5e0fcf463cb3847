package jobs

import (
	"log"
	"os"
	"strconv"
	"time"

	"rangba/services"
	"rangba/task"
)

// StartRoundScheduler runs the controller tick on an in-process ticker for
// deployments without an external job runner. CONTROLLER_TICK_SECONDS
// overrides the cadence; 0 disables the ticker entirely.
func StartRoundScheduler() {
	interval := 60
	if raw := os.Getenv("CONTROLLER_TICK_SECONDS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("⚠️  Invalid value for CONTROLLER_TICK_SECONDS: %s\n", raw)
		} else {
			interval = parsed
		}
	}
	if interval <= 0 {
		log.Println("🟡 In-process round scheduler disabled")
		return
	}

	tickerRounds := time.NewTicker(time.Duration(interval) * time.Second)
	go func() {
		for {
			<-tickerRounds.C
			if _, err := services.RunControllerTick(time.Now()); err != nil {
				log.Printf("❌ error running controller tick: %v", err)
			}
		}
	}()

	tickerCleanup := time.NewTicker(24 * time.Hour)
	go func() {
		for {
			<-tickerCleanup.C
			task.CleanupFinishedRounds()
		}
	}()
}
