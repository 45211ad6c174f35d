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
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/debug"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve spec",
	Short: "Resolve a fully-qualified name against the sample program and report its kind.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sink := debug.NewLogrusSink(nil)

		d, err := newDemoDomain(sink)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		ty, err := d.Resolve(demoHead, args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fmt.Printf("%s: %s\n", ty.Fullname(), ty.Kind())
	},
}
