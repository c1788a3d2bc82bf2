/*
* Copyright (c) 2024-present Sigma-Soft, Ltd.
* @author Dmitry Molchanovsky
 */

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirm asks the operator a yes/no question on stdin. Anything but
// an explicit yes declines, a closed stdin declines too.
func confirm(question string) bool {
	if assumeYes {
		return true
	}
	fmt.Print(question + " [y/N]: ")
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Println()
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}
