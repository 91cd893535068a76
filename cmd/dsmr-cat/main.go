package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ftl/dsmr-p1/obis"
	"github.com/ftl/dsmr-p1/serial"
	"github.com/ftl/dsmr-p1/telegram"
)

var rootCmd = &cobra.Command{
	Use:   "dsmr-cat",
	Short: "Read P1 telegrams from a smart meter and print their fields",
	RunE:  run,

	SilenceUsage: true,
}

var rootFlags = struct {
	device   string
	baudRate uint
	file     string
	config   string
	noCRC    bool
	lenient  bool
	follow   bool
	json     bool
}{}

func init() {
	rootCmd.Flags().StringVar(&rootFlags.device, "device", "", "serial port of the P1 converter (default: auto-detect)")
	rootCmd.Flags().UintVar(&rootFlags.baudRate, "baud", 0, "baud rate of the serial port (default: 115200)")
	rootCmd.Flags().StringVar(&rootFlags.file, "file", "", "read telegrams from this file instead of a serial port, - for stdin")
	rootCmd.Flags().StringVar(&rootFlags.config, "config", "", "configuration file (default: ~/.dsmr-cat.yaml)")
	rootCmd.Flags().BoolVar(&rootFlags.noCRC, "no-crc", false, "do not verify the telegram checksum (required for meters up to DSMR 2.2)")
	rootCmd.Flags().BoolVar(&rootFlags.lenient, "lenient", false, "skip telegram lines that cannot be decoded")
	rootCmd.Flags().BoolVar(&rootFlags.follow, "follow", false, "keep reading telegrams instead of stopping after the first one")
	rootCmd.Flags().BoolVar(&rootFlags.json, "json", false, "print the fields as JSON")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := loadConfig(rootFlags.config)
	if err != nil {
		return err
	}

	input, err := openInput(cfg, logger)
	if err != nil {
		return err
	}
	defer input.Close()

	parseOpts := make([]telegram.ParseOption, 0, 2)
	if rootFlags.noCRC {
		parseOpts = append(parseOpts, telegram.WithoutChecksum())
	}
	if rootFlags.lenient {
		parseOpts = append(parseOpts, telegram.WithLenientParsing())
	}
	parseOpts = append(parseOpts, telegram.WithUnknownLineHandler(func(id obis.ID, value string) {
		logger.Debug("unknown telegram line", zap.Stringer("obis", id), zap.String("value", value))
	}))

	reader := telegram.NewReader(input)
	tgm := telegram.New()
	for {
		data, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		tgm.Reset()
		err = tgm.Parse(data, parseOpts...)
		if err != nil {
			if !rootFlags.follow {
				return err
			}
			logger.Warn("dropping invalid telegram", zap.Error(err))
			continue
		}

		if rootFlags.json {
			err = printJSON(os.Stdout, tgm)
		} else {
			err = printFields(os.Stdout, tgm)
		}
		if err != nil {
			return err
		}

		if !rootFlags.follow {
			return nil
		}
	}
}

func openInput(cfg config, logger *zap.Logger) (io.ReadCloser, error) {
	if rootFlags.file == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	if rootFlags.file != "" {
		return os.Open(rootFlags.file)
	}

	device := rootFlags.device
	if device == "" {
		device = cfg.Device
	}
	if device == "" {
		var err error
		device, err = serial.FindMeterPortName()
		if err != nil {
			return nil, err
		}
		logger.Info("auto-detected P1 converter", zap.String("device", device))
	}

	baudRate := rootFlags.baudRate
	if baudRate == 0 {
		baudRate = cfg.BaudRate
	}
	if baudRate == 0 {
		baudRate = serial.DefaultBaudRate
	}

	return serial.OpenWithBaudRate(device, baudRate)
}
