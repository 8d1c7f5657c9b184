package pkg

import (
	"fmt"
	"io"
	"log"
	"os"
)

// InitLog sends the standard logger to dest, appending. An empty dest
// discards log output; the browser owns the terminal while it runs.
func InitLog(dest, prefix string) error {
	log.SetPrefix(prefix)

	if dest == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	log.SetOutput(f)

	return nil
}
