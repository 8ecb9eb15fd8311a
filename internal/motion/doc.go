// Package motion resolves movement descriptors against a document.
//
// A Movement is immutable data describing a requested motion (word, letter
// search, line, direction, paragraph, sentence, section). It holds no reference
// to a buffer and round-trips through JSON.
//
// The Resolver maps (document, position, movement) to a target position or
// range. Repeat counts follow a stall-clamp policy: a movement with count > 1
// first takes one step; if that step makes no progress the result is the start
// position. Otherwise the remaining count-1 steps run from there, and if they
// make no further progress the result is the single-step result. A repeated
// motion therefore never reports the position reached before a stall in a later
// step.
//
// Movements that cannot advance resolve to their start position. Only malformed
// movements (unknown type, modifier or direction) produce errors, and they are
// reported before anything is resolved.
package motion
