/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/activities/internal/state"
	"github.com/Paintersrp/activities/pkg/cmd/root"
)

func Execute() {
	// ACTIVITIES_LOG_STDERR=1 sends logs to the terminal instead of the log file.
	viper.SetEnvPrefix("activities")
	viper.BindEnv("log_stderr")

	s, err := state.NewState(state.Options{
		LogToStderr: viper.GetBool("log_stderr"),
	})
	cobra.CheckErr(err)
	defer s.Close()

	rootCmd, rootErr := root.NewCmdRoot(s)
	cobra.CheckErr(rootErr)

	if err := rootCmd.Execute(); err != nil {
		s.Close()
		os.Exit(1)
	}
}
