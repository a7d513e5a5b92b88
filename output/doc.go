// Package output provides styled terminal output for the conflict CLI.
//
// # Overview
//
// Two kinds of output live here:
//
//   - Status helpers (Success, Error, Info, Step, Verbose) for the CLI
//   - Logger, the resolver's decision log ("Keeping a.txt", "Skipping b.txt")
//
// # Usage
//
//	output.Success("Wrote 3 files")
//	output.Info("Nothing to do")
//	output.Error("Something went wrong")
//
//	log := output.NewLogger(os.Stdout)
//	log.Log("Keeping a.txt")
//	// [14:02:11] [conflict] Keeping a.txt
//
// # Verbose and quiet modes
//
//	output.SetVerbose(true)
//	output.Verbose("This only prints in verbose mode")
//
//	output.SetQuiet(true) // errors still print
//
// # Styling
//
//   - Success: 🔥 green bold
//   - Error: ❌ red bold (stderr)
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
//   - Logger: gray timestamp, cyan tag
package output
