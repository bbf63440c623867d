// Package scene keeps an ordered list of placed shapes and draws them,
// outlining the selected one.
//
// Objects are drawn in insertion order, so later objects cover earlier
// ones. The selected object is first drawn in line mode with the border
// color, which inflates it by the border width, and then drawn normally
// on top, leaving a band of border color around it.
package scene
