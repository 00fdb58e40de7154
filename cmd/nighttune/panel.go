package main

import (
	"fmt"
	"strconv"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/nightyard/internal/settings"
	"github.com/Faultbox/nightyard/internal/tuning"
)

// renderParameters draws one widget per binding, grouped as the registry
// orders them. Right-clicking a widget resets it to its default.
func (app *App) renderParameters() {
	if imgui.ButtonV("Reset All", imgui.NewVec2(-1, 0)) {
		app.registry.ResetAll(&app.state)
	}
	imgui.Separator()

	bindings := app.registry.Bindings()
	for i := 0; i < len(bindings); {
		group := bindings[i].Group
		j := i
		for j < len(bindings) && bindings[j].Group == group {
			j++
		}
		if imgui.TreeNodeExStrV(group, imgui.TreeNodeFlagsDefaultOpen) {
			for _, b := range bindings[i:j] {
				app.renderBinding(b)
			}
			imgui.TreePop()
		}
		i = j
	}
}

func (app *App) renderBinding(b *tuning.Binding) {
	text := b.Format(&app.state)
	imgui.SetNextItemWidth(-160)

	var (
		changed bool
		next    string
	)
	switch b.Kind {
	case tuning.Float:
		v, _ := strconv.ParseFloat(text, 32)
		f := float32(v)
		if imgui.SliderFloatV(b.Key, &f, b.Min, b.Max, sliderFormat(b.Step), imgui.SliderFlagsNone) {
			changed, next = true, strconv.FormatFloat(float64(f), 'g', -1, 32)
		}
	case tuning.Int:
		v, _ := strconv.Atoi(text)
		n := int32(v)
		if imgui.SliderIntV(b.Key, &n, int32(b.Min), int32(b.Max), "%d", imgui.SliderFlagsNone) {
			changed, next = true, strconv.Itoa(snapInt(int(n), int(b.Step)))
		}
	case tuning.Bool:
		on := text == "true"
		if imgui.Checkbox(b.Key, &on) {
			changed, next = true, strconv.FormatBool(on)
		}
	case tuning.Color:
		c, err := settings.ParseColor(text)
		if err != nil {
			imgui.TextColored(imgui.NewVec4(1, 0.4, 0.3, 1), fmt.Sprintf("%s: %s", b.Key, text))
			return
		}
		rgb := [3]float32{c.X, c.Y, c.Z}
		if imgui.ColorEdit3(b.Key, &rgb) {
			c.X, c.Y, c.Z = rgb[0], rgb[1], rgb[2]
			changed, next = true, settings.HexColor(c)
		}
	case tuning.Choice:
		imgui.Text(b.Key)
		for _, choice := range b.Choices {
			imgui.SameLine()
			if imgui.SelectableBoolV(choice, choice == text, 0, imgui.NewVec2(60, 0)) && choice != text {
				changed, next = true, choice
			}
		}
	}

	if imgui.IsItemHovered() {
		imgui.SetTooltip(fmt.Sprintf("%s = %s (right-click to reset)", b.Key, text))
	}
	if imgui.IsItemClickedV(imgui.MouseButtonRight) {
		if err := app.registry.Reset(&app.state, b.Key); err != nil {
			app.setStatus(err.Error())
		}
		return
	}

	if changed {
		if err := app.registry.Set(&app.state, b.Key, next); err != nil {
			app.setStatus(err.Error())
		}
	}
}

// sliderFormat returns a printf format showing as many decimals as step has.
func sliderFormat(step float32) string {
	decimals := 0
	for s := step; decimals < 4 && s > 0 && s < 0.999; s *= 10 {
		decimals++
	}
	return fmt.Sprintf("%%.%df", decimals)
}

// snapInt rounds n to the nearest multiple of step.
func snapInt(n, step int) int {
	if step <= 1 {
		return n
	}
	return (n + step/2) / step * step
}
