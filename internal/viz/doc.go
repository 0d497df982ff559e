// Package viz renders cost evaluation results in the terminal: static
// ascii plots of the per-node cost and a live replay view.
package viz
