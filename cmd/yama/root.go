// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Command yama is a small cobra CLI exercising the machine implemented
// under pkg/yama against the in-memory sample parcel of demo.go: "run"
// invokes a function, "disasm" prints its bytecode, "resolve" reports the
// kind of any qualified name.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yama",
	Short: "A toolbox for the Yama register-machine core.",
	Long:  "A toolbox for the Yama register-machine core: run, disassemble and resolve names against a sample program.",
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main exactly once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Uint("max-frames", 1024, "maximum call-frame depth before a stack_overflow panic")
	rootCmd.PersistentFlags().String("log-level", "info", "logrus level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "shorthand for --log-level=debug")

	cobra.OnInitialize(func() {
		level := GetString(rootCmd, "log-level")
		if GetFlag(rootCmd, "verbose") {
			level = "debug"
		}

		parsed, err := log.ParseLevel(level)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		log.SetLevel(parsed)
	})

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(disasmCmd)
	rootCmd.AddCommand(resolveCmd)
}
