package main

import nutrifit "github.com/NutriFit-Master2-Project/nutrifit-client/cmd/nutrifit"

func main() {
	nutrifit.Execute()
}
