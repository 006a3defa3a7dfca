// Package forecast assembles framed weather blocks from readings and labels.
//
// Hourly draws a 24-hour temperature sparkline between a superscript reading
// axis and a subscript hour axis, with an optional precipitation row. Current
// lays out present conditions as label/value rows sharing one cell width.
//
// Labels arrive already translated. Localize obtains them from a Translator in
// one ordered call over Keys().
package forecast
