package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"enigma/pkg/enigma"
)

func main() {
	// Define arguments
	rotorsPtr := flag.String("rotors", "I,II,III", "Comma-separated rotor names left to right (I-VIII, Beta, Gamma)")
	reflectorPtr := flag.String("reflector", "B", "Reflector name (A, B, C, B-thin, C-thin)")
	offsetsPtr := flag.String("offsets", "", "Starting rotor offsets, one letter per rotor (default all A)")
	ringsPtr := flag.String("rings", "", "Ring settings, one letter per rotor (default all A)")
	plugboardPtr := flag.String("plugboard", "", "Plugboard pairs, e.g. \"AB CD EF\" (at most 10)")
	settingsPtr := flag.String("settings", "", "Path to a JSON settings file; overrides the machine flags above")
	decryptPtr := flag.Bool("decrypt", false, "Decrypt instead of encrypt (same circuit, guarded offsets)")
	textPtr := flag.String("text", "", "Text to process; if empty, reads from -file or the Standard Input")
	filePtr := flag.String("file", "", "Path to the input file")
	outFilePtr := flag.String("out", "", "Path to the output file; if empty, the result is written to the Standard Output")
	groupPtr := flag.Int("group", 5, "Output group size in letters; 0 disables grouping")
	columnsPtr := flag.Int("columns", 6, "Groups per output line")
	flag.Parse()

	// Build settings from the flags or the settings file
	settings := enigma.Settings{
		Rotors:    strings.Split(*rotorsPtr, ","),
		Reflector: *reflectorPtr,
		Offsets:   *offsetsPtr,
		Rings:     *ringsPtr,
		Plugboard: *plugboardPtr,
	}
	if *settingsPtr != "" {
		var err error
		settings, err = enigma.SettingsFromJson(*settingsPtr)
		if err != nil {
			log.Fatalf("cannot parse settings file: %v", err)
		}
	}

	machine, err := enigma.New(settings)
	if err != nil {
		log.Fatalf("cannot build machine: %v", err)
	}

	text, err := readInput(*textPtr, *filePtr)
	if err != nil {
		log.Fatalf("cannot read input: %v", err)
	}

	var output string
	if *decryptPtr {
		output, err = enigma.Decrypt(machine, text)
	} else {
		output, err = enigma.Encrypt(machine, text)
	}
	if err != nil {
		log.Fatalf("cannot process input: %v", err)
	}

	grouped := groupOutput(output, *groupPtr, *columnsPtr)
	if *outFilePtr == "" {
		fmt.Println(grouped)
	} else if err := os.WriteFile(*outFilePtr, []byte(grouped+"\n"), 0666); err != nil {
		log.Fatalf("cannot write output file: %v", err)
	}
}

func readInput(text, file string) (string, error) {
	if text != "" {
		return text, nil
	}
	if file != "" {
		bytes, err := os.ReadFile(file)
		return string(bytes), err
	}
	bytes, err := io.ReadAll(os.Stdin)
	return string(bytes), err
}

// groupOutput renders ciphertext the way operators wrote it down: fixed-size
// letter groups, a limited number of groups per line.
func groupOutput(text string, groupSize, columns int) string {
	if groupSize <= 0 || columns <= 0 {
		return text
	}

	var builder strings.Builder
	for start, group := 0, 0; start < len(text); start, group = start+groupSize, group+1 {
		end := min(start+groupSize, len(text))
		if group > 0 {
			if group%columns == 0 {
				builder.WriteString("\n")
			} else {
				builder.WriteString("  ")
			}
		}
		builder.WriteString(text[start:end])
	}
	return builder.String()
}
