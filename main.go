// seawater command line interface
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/seawaterlib/seawater-go/seawater"
)

func main() {
	parser := argparse.NewParser("seawater", "Evaluates empirical seawater formulas: sound absorption, sound speed, density and depth-pressure conversion")

	quantity := parser.SelectorPositional([]string{
		"absorption", "soundspeed", "density", "depth2pressure", "pressure2depth", "list",
	}, &argparse.Options{
		Help: "quantity to evaluate, or 'list' to show the registered variants"})

	variant := parser.String("", "variant", &argparse.Options{
		Default: "",
		Help:    "formula variant tag, e.g. francois-garrison-1982 (defaults per quantity)"})

	temp := parser.String("t", "temperature", &argparse.Options{
		Default: "",
		Help:    "temperature values in °C (ITS-90), comma separated"})

	sal := parser.String("s", "salinity", &argparse.Options{
		Default: "",
		Help:    "salinity values in ppt, comma separated"})

	depth := parser.String("z", "depth", &argparse.Options{
		Default: "",
		Help:    "depth values in m, comma separated"})

	press := parser.String("p", "pressure", &argparse.Options{
		Default: "",
		Help:    "pressure values in dbar, comma separated"})

	freq := parser.String("f", "frequency", &argparse.Options{
		Default: "",
		Help:    "acoustic frequency values in kHz, comma separated"})

	ph := parser.String("", "ph", &argparse.Options{
		Default: "",
		Help:    "pH values, comma separated"})

	lat := parser.String("", "lat", &argparse.Options{
		Default: "",
		Help:    "latitude values in deg, comma separated"})

	eq := parser.Int("", "eq", &argparse.Options{
		Default: 1,
		Help:    "sub-equation id of variants published in several forms"})

	ac := parser.Selector("", "ac", []string{
		seawater.AccuracySimple, seawater.AccuracyBasic, seawater.AccuracyComplete,
	}, &argparse.Options{
		Default: seawater.AccuracyComplete,
		Help:    "accuracy level of the leroy-1969 equations"})

	region := parser.String("", "region", &argparse.Options{
		Default: seawater.RegionCommon,
		Help:    "ocean/sea region of the leroy-parthiot-1998 pair"})

	mode := parser.Selector("", "mode", []string{"total", "contributors"}, &argparse.Options{
		Default: "total",
		Help:    "absorption output: summed total or per-contributor breakdown"})

	checkDomain := parser.Flag("", "check_domain", &argparse.Options{
		Help: "reject inputs outside the variant's documented fitted range"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "output file path (stdout when empty)"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR"}, &argparse.Options{
		Default: "WARN",
		Help:    "log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	logger := logging.GetLogger("seawater")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	}

	if *quantity == "list" {
		buf := bytes.NewBuffer([]byte{})
		listVariants(buf)
		emit(buf, *filename)
		return
	}

	sample := seawater.Sample{
		T:   parseFloats(parser, *temp),
		S:   parseFloats(parser, *sal),
		Z:   parseFloats(parser, *depth),
		P:   parseFloats(parser, *press),
		F:   parseFloats(parser, *freq),
		PH:  parseFloats(parser, *ph),
		Lat: parseFloats(parser, *lat),
	}

	tag := *variant
	if tag == "" {
		tag = defaultVariant(*quantity)
	}

	if *checkDomain {
		if err := seawater.ValidateDomain(tag, sample); err != nil {
			fail(err)
		}
	}

	opts := []seawater.Option{
		seawater.Equation(*eq),
		seawater.Accuracy(*ac),
		seawater.Region(*region),
	}

	buf := bytes.NewBuffer([]byte{})
	switch *quantity {
	case "absorption":
		outputMode, err := seawater.ParseOutputMode(*mode)
		if err != nil {
			fail(err)
		}
		total, parts, err := seawater.EvalAbsorption(tag, sample, outputMode)
		if err != nil {
			fail(err)
		}
		if parts != nil {
			toCSV(buf, []string{"boric_acid_db_km", "magnesium_sulphate_db_km", "pure_water_db_km"},
				parts.BoricAcid, parts.MagnesiumSulphate, parts.PureWater)
		} else {
			toCSV(buf, []string{"absorption_db_km"}, total)
		}

	case "soundspeed":
		c, err := seawater.SoundSpeed(tag, sample, opts...)
		if err != nil {
			fail(err)
		}
		toCSV(buf, []string{"sound_speed_m_s"}, c)

	case "density":
		rho, err := seawater.Density(sample)
		if err != nil {
			fail(err)
		}
		toCSV(buf, []string{"density_kg_m3"}, rho)

	case "depth2pressure":
		p, err := seawater.DepthToPressure(tag, sample.Z, sample.Lat, opts...)
		if err != nil {
			fail(err)
		}
		toCSV(buf, []string{"pressure_dbar"}, p)

	case "pressure2depth":
		z, err := seawater.PressureToDepth(tag, sample.P, sample.Lat, opts...)
		if err != nil {
			fail(err)
		}
		toCSV(buf, []string{"depth_m"}, z)
	}

	emit(buf, *filename)
}

func defaultVariant(quantity string) string {
	switch quantity {
	case "absorption":
		return "francois-garrison-1982"
	case "soundspeed":
		return "leroy-2008"
	case "density":
		return "eos-80"
	default:
		return "leroy-parthiot-1998"
	}
}

// parseFloats splits a comma-separated argument into values. An empty
// argument means "not given" and keeps the library defaults.
func parseFloats(parser *argparse.Parser, arg string) []float64 {
	if arg == "" {
		return nil
	}
	parts := strings.Split(arg, ",")
	vals := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			fmt.Print(parser.Usage(err))
			os.Exit(2)
		}
		vals[i] = v
	}
	return vals
}

func toCSV(buf *bytes.Buffer, header []string, cols ...[]float64) {
	buf.WriteString(strings.Join(header, ","))
	buf.WriteString("\n")
	for i := 0; i < len(cols[0]); i++ {
		for j, col := range cols {
			if j > 0 {
				buf.WriteString(",")
			}
			buf.WriteString(strconv.FormatFloat(col[i], 'f', -1, 64))
		}
		buf.WriteString("\n")
	}
}

func listVariants(buf *bytes.Buffer) {
	buf.WriteString("quantity,variant,year,unit,equations,accuracies,regions\n")
	for _, quantity := range seawater.Quantities() {
		for _, info := range seawater.Variants(quantity) {
			eqs := make([]string, len(info.Equations))
			for i, n := range info.Equations {
				eqs[i] = strconv.Itoa(n)
			}
			fmt.Fprintf(buf, "%s,%s,%d,%s,%s,%s,%s\n",
				quantity, info.Tag, info.Year, info.Unit,
				strings.Join(eqs, " "),
				strings.Join(info.Accuracies, " "),
				strings.Join(info.Regions, " "))
		}
	}
}

func emit(buf *bytes.Buffer, filename string) {
	if filename == "" {
		fmt.Print(buf.String())
		return
	}
	if err := os.WriteFile(filename, buf.Bytes(), os.ModePerm); err != nil {
		panic(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
