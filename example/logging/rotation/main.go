package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joeydtaylor/logkit/pkg/builder"
)

func main() {
	dir := filepath.Join("logs", "rotation")
	sink, err := builder.NewFileSink(builder.FileSinkConfig{
		LogDir:      dir,
		MaxFileSize: 512,
		MaxFiles:    3,
		Rotate:      true,
		ClearOnInit: true,
		Compression: builder.CompressionZstd,
	})
	if err != nil {
		fmt.Printf("Failed to create file sink: %v\n", err)
		return
	}

	for i := 0; i < 40; i++ {
		sink.Info(fmt.Sprintf("event %02d", i), strings.Repeat("x", 16))
	}
	sink.Close()

	archive := sink.InfoPath() + ".1.zst"
	r, err := builder.OpenLogFile(archive)
	if err != nil {
		fmt.Printf("Failed to open %s: %v\n", archive, err)
		return
	}
	defer r.Close()

	fmt.Printf("Newest archive %s:\n", archive)
	if _, err := io.Copy(os.Stdout, r); err != nil {
		fmt.Printf("Failed to read archive: %v\n", err)
	}
}
